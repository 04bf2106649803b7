package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
)

const (
	// NumOfCardsInDeck 52張牌加上大小鬼
	NumOfCardsInDeck int = 54
	// NumOfCardsOnePlayer 發牌後每位玩家持牌
	NumOfCardsOnePlayer int = 12
	// NumOfKittyCards 底牌(kitty)張數,也是莊家必須棄掉的張數
	NumOfKittyCards int = 6
)

// Deck 剩餘的牌,最後一張是牌頂
type Deck struct {
	cards []Card
}

// BuildDeck 依固定順序產生一副54張牌
func BuildDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, NumOfCardsInDeck)}
	for _, suit := range TrumpOptions {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	d.cards = append(d.cards,
		Card{Rank: LittleJoker, Suit: NoSuit},
		Card{Rank: BigJoker, Suit: NoSuit})
	return d
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards 回傳剩餘牌的複本
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Shuffle Fisher-Yates 洗牌
func (d *Deck) Shuffle(r *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw 從牌頂抽一張牌
func (d *Deck) Draw() (Card, error) {
	l := len(d.cards)
	if l == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[l-1]
	d.cards = d.cards[:l-1]
	return c, nil
}

// SortHand 手牌排序:花色(紅心,梅花,方塊,黑桃,鬼牌),同花色點數由小到大,小鬼在大鬼前
func SortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank < hand[j].Rank
	})
}

// deal 輪流發12張牌給四家,剩下6張成為底牌,發完後各家手牌排序
func deal(d *Deck) (hands [PlayersLimit][]Card, kitty []Card, err error) {
	for i := range hands {
		hands[i] = make([]Card, 0, NumOfCardsOnePlayer+NumOfKittyCards)
	}

	var c Card
	for round := 0; round < NumOfCardsOnePlayer; round++ {
		for _, seat := range playerSeats {
			if c, err = d.Draw(); err != nil {
				return hands, nil, err
			}
			hands[seat] = append(hands[seat], c)
		}
	}

	kitty = make([]Card, 0, NumOfKittyCards)
	for i := 0; i < NumOfKittyCards; i++ {
		if c, err = d.Draw(); err != nil {
			return hands, nil, err
		}
		kitty = append(kitty, c)
	}

	for _, seat := range playerSeats {
		SortHand(hands[seat])
		slog.Debug("deal初始牌分配",
			slog.String("座位", seat.String()),
			slog.String("牌", cardsString(hands[seat])))
	}
	return hands, kitty, nil
}

func cardsString(cards []Card) string {
	s := make([]string, 0, len(cards))
	for i := range cards {
		s = append(s, fmt.Sprintf("|%s|", cards[i]))
	}
	return strings.Join(s, " ")
}

// removeCards 依索引移除手牌,回傳剩餘手牌與移除的牌
func removeCards(hand []Card, indexes []int) (rest, removed []Card) {
	drop := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		drop[idx] = struct{}{}
	}
	rest = make([]Card, 0, len(hand))
	removed = make([]Card, 0, len(indexes))
	for i := range hand {
		if _, ok := drop[i]; ok {
			removed = append(removed, hand[i])
			continue
		}
		rest = append(rest, hand[i])
	}
	return rest, removed
}
