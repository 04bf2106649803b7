package game

import (
	"fmt"
	"log/slog"
)

type (
	// Play 一個座位打出的一張牌
	Play struct {
		Seat Seat
		Card Card
	}

	// Trick 一墩,每個座位最多出一張,第一張決定首引花色
	Trick struct {
		Plays []Play
	}
)

func (t *Trick) Len() int {
	return len(t.Plays)
}

// Add 加入一張出牌
func (t *Trick) Add(seat Seat, c Card) error {
	if len(t.Plays) >= PlayersLimit {
		return ErrTrickFull
	}
	for i := range t.Plays {
		if t.Plays[i].Seat == seat {
			return fmt.Errorf("%w: %s", ErrDuplicatePlay, seat)
		}
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Card: c})
	return nil
}

// LedSuit 首引花色,空墩回傳 false
func (t *Trick) LedSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return NoSuit, false
	}
	return t.Plays[0].Card.PlaySuit(), true
}

// Cards 此墩所有出牌
func (t *Trick) Cards() []Card {
	cards := make([]Card, 0, len(t.Plays))
	for i := range t.Plays {
		cards = append(cards, t.Plays[i].Card)
	}
	return cards
}

// LegalPlays 可出的牌: 空墩全部可出,有首引花色就必須跟,沒有則任意出
func LegalPlays(t *Trick, hand []Card) []Card {
	led, ok := t.LedSuit()
	if !ok || led == NoSuit {
		return append([]Card(nil), hand...)
	}

	follow := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.PlaySuit() == led {
			follow = append(follow, c)
		}
	}
	if len(follow) == 0 {
		return append([]Card(nil), hand...)
	}
	return follow
}

// Winner 由左至右比對,回傳贏得此墩的出牌
func (t *Trick) Winner(trump Suit) (Play, error) {
	if len(t.Plays) == 0 {
		return Play{}, ErrEmptyTrick
	}

	win := t.Plays[0]
	for _, candidate := range t.Plays[1:] {
		if beats(candidate.Card, win.Card, trump) {
			win = candidate
		}
	}

	slog.Debug("Winner", slog.String("FYI", fmt.Sprintf("%s 以 |%s| 贏得此墩 (王牌 %s)", win.Seat, win.Card, trump)))
	return win, nil
}

// beats candidate 是否取代目前贏家
func beats(candidate, winner Card, trump Suit) bool {
	var (
		cJoker = candidate.IsJoker()
		wJoker = winner.IsJoker()
		cSuit  = candidate.PlaySuit()
		wSuit  = winner.PlaySuit()
	)

	switch {
	case cJoker && wJoker:
		return candidate.Rank == BigJoker && winner.Rank != BigJoker
	case cJoker:
		return true
	case wJoker:
		return false
	case cSuit == trump && wSuit == trump:
		return candidate.Rank > winner.Rank
	case cSuit == trump:
		return true
	case cSuit == wSuit:
		return candidate.Rank > winner.Rank
	}
	return false
}
