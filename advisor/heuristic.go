package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bidwhist/game"
)

// Heuristic 同程序內的簡單顧問,以文字回答,走與遠端顧問相同的解析與驗證流程
type Heuristic struct{}

func (Heuristic) Ask(_ context.Context, q Query) (string, error) {
	switch req := q.Request.(type) {
	case game.BidRequest:
		return fmt.Sprintf("I bid %d.", heuristicBid(req)), nil
	case game.DiscardRequest:
		idx := heuristicDiscard(req)
		s := make([]string, 0, len(idx))
		for _, i := range idx {
			s = append(s, fmt.Sprint(i))
		}
		return "Discard " + strings.Join(s, " "), nil
	case game.TrumpRequest:
		return fmt.Sprintf("%d", heuristicTrump(req.Hand, req.Options)), nil
	case game.PlayRequest:
		return fmt.Sprintf("Card %d.", heuristicPlay(req)), nil
	}
	return "", fmt.Errorf("heuristic advisor: unsupported %s request %T", q.Kind, q.Request)
}

// 最長花色,同長度取先出現者
func bestSuit(hand []game.Card, options []game.Suit) (suit game.Suit, length int) {
	count := map[game.Suit]int{}
	for _, c := range hand {
		count[c.Suit]++
	}
	suit = options[0]
	for _, s := range options {
		if count[s] > length {
			suit, length = s, count[s]
		}
	}
	return suit, length
}

func heuristicTrump(hand []game.Card, options []game.Suit) int {
	suit, _ := bestSuit(hand, options)
	for i, s := range options {
		if s == suit {
			return i
		}
	}
	return 0
}

// heuristicBid 鬼牌,A,K 與最長花色估計可吃墩數
func heuristicBid(req game.BidRequest) int {
	_, long := bestSuit(req.Hand, game.TrumpOptions[:])
	strength := long - 3
	for _, c := range req.Hand {
		switch {
		case c.IsJoker():
			strength += 2
		case c.Rank == game.Ace:
			strength++
		case c.Rank == game.King && c.Suit != game.NoSuit:
			strength++
		}
	}

	want := game.BidPass
	switch {
	case strength >= 10:
		want = 7
	case strength >= 8:
		want = 6
	case strength >= 6:
		want = 5
	case strength >= 4:
		want = 4
	}

	bid := game.BidPass
	for _, o := range req.Options {
		if o <= want && o > bid {
			bid = o
		}
	}
	return bid
}

// heuristicDiscard 保留王牌花色與鬼牌,從最小的非王牌棄起
func heuristicDiscard(req game.DiscardRequest) []int {
	trump, _ := bestSuit(req.Hand, game.TrumpOptions[:])
	order := make([]int, len(req.Hand))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cardValue(req.Hand[order[i]], trump) < cardValue(req.Hand[order[j]], trump)
	})
	idx := append([]int(nil), order[:req.Count]...)
	sort.Ints(idx)
	return idx
}

func cardValue(c game.Card, trump game.Suit) int {
	switch {
	case c.IsJoker():
		return 100 + int(c.Rank)
	case c.PlaySuit() == trump:
		return 50 + int(c.Rank)
	}
	return int(c.Rank)
}

// heuristicPlay 夥伴領先時出最小的牌,否則出能贏的最小牌,贏不了出最小的牌
func heuristicPlay(req game.PlayRequest) int {
	legal := append([]game.Card(nil), req.Legal...)
	sort.SliceStable(legal, func(i, j int) bool {
		return cardValue(legal[i], req.Trump) < cardValue(legal[j], req.Trump)
	})

	choice := legal[0]
	if cur, err := req.Trick.Winner(req.Trump); err != nil || cur.Seat != req.Seat.Partner() {
		for _, c := range legal {
			t := game.Trick{Plays: append([]game.Play(nil), req.Trick.Plays...)}
			if t.Add(req.Seat, c) != nil {
				continue
			}
			if win, err := t.Winner(req.Trump); err == nil && win.Seat == req.Seat {
				choice = c
				break
			}
		}
	}

	for i := range req.Hand {
		if req.Hand[i].Is(choice) {
			return i
		}
	}
	return 0
}
