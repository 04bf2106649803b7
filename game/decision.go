package game

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

type (
	// BidRequest 叫牌時提供給決策來源的資訊
	BidRequest struct {
		Seat    Seat
		Hand    []Card
		Bidders []Seat // 已叫牌的座位,與 Bids 對應
		Bids    []int
		Options []int
		Last    bool // 是否為第四家
		Scores  [2]int
	}

	// DiscardRequest 莊家拿到底牌後必須棄 Count 張
	DiscardRequest struct {
		Seat     Seat
		Hand     []Card
		Count    int
		Contract Contract
	}

	// TrumpRequest 莊家宣告王牌
	TrumpRequest struct {
		Seat     Seat
		Hand     []Card
		Options  []Suit
		Contract Contract
	}

	// PlayRequest 出牌. Hand 是完整手牌,回傳的索引對應 Hand, Legal 是可出的子集合
	PlayRequest struct {
		Seat     Seat
		Hand     []Card
		Legal    []Card
		Trick    Trick
		History  []Trick
		Trump    Suit
		Contract Contract
		Tricks   [2]int
	}

	// DecisionSource 真人或自動玩家都實作同一組決策
	DecisionSource interface {
		ProposeBid(ctx context.Context, req BidRequest) (int, error)
		ProposeDiscard(ctx context.Context, req DiscardRequest) ([]int, error)
		ProposeTrump(ctx context.Context, req TrumpRequest) (Suit, error)
		ProposeCard(ctx context.Context, req PlayRequest) (int, error)
	}
)

var integerToken = regexp.MustCompile(`-?\d+`)

// ParseChoice 從文字中取出第一個整數,忽略前後標點
func ParseChoice(raw string) (int, error) {
	token := integerToken.FindString(raw)
	if token == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoUsableAnswer, raw)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoUsableAnswer, raw)
	}
	return n, nil
}

// ParseChoices 從文字中取出所有整數
func ParseChoices(raw string) ([]int, error) {
	tokens := integerToken.FindAllString(raw, -1)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoUsableAnswer, raw)
	}
	choices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNoUsableAnswer, raw)
		}
		choices = append(choices, n)
	}
	return choices, nil
}

func ValidateBid(req BidRequest, bid int) error {
	if !slices.Contains(req.Options, bid) {
		return fmt.Errorf("%w: bid %d is not one of %v", ErrInvalidSelection, bid, req.Options)
	}
	return nil
}

func ValidateDiscard(req DiscardRequest, indexes []int) error {
	if len(indexes) != req.Count {
		return fmt.Errorf("%w: discard exactly %d cards, got %d", ErrInvalidSelection, req.Count, len(indexes))
	}
	seen := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(req.Hand) {
			return fmt.Errorf("%w: index %d out of range 0..%d", ErrInvalidSelection, idx, len(req.Hand)-1)
		}
		if _, ok := seen[idx]; ok {
			return fmt.Errorf("%w: index %d repeated", ErrInvalidSelection, idx)
		}
		seen[idx] = struct{}{}
	}
	return nil
}

func ValidateTrump(req TrumpRequest, suit Suit) error {
	if !slices.Contains(req.Options, suit) {
		return fmt.Errorf("%w: %s is not a trump option", ErrInvalidSelection, suit)
	}
	return nil
}

func ValidatePlay(req PlayRequest, idx int) error {
	if idx < 0 || idx >= len(req.Hand) {
		return fmt.Errorf("%w: index %d out of range 0..%d", ErrInvalidSelection, idx, len(req.Hand)-1)
	}
	c := req.Hand[idx]
	for _, legal := range req.Legal {
		if legal.Is(c) {
			return nil
		}
	}
	led, _ := req.Trick.LedSuit()
	return fmt.Errorf("%w: |%s| does not follow %s", ErrInvalidSelection, c, led)
}

// TrumpChoice 將選項索引轉成花色
func TrumpChoice(req TrumpRequest, idx int) (Suit, error) {
	if idx < 0 || idx >= len(req.Options) {
		return NoSuit, fmt.Errorf("%w: index %d out of range 0..%d", ErrInvalidSelection, idx, len(req.Options)-1)
	}
	return req.Options[idx], nil
}

// 超過嘗試次數後採用第一個合法選項
func firstBid(BidRequest) int {
	return BidPass
}

func firstDiscard(req DiscardRequest) []int {
	indexes := make([]int, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

func firstTrump(req TrumpRequest) Suit {
	return req.Options[0]
}

func firstPlay(req PlayRequest) int {
	for i := range req.Hand {
		if ValidatePlay(req, i) == nil {
			return i
		}
	}
	return 0
}
