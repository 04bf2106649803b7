package game

import (
	"fmt"
	"log/slog"
	"slices"
)

const (
	BidPass int = 0
	MinBid  int = 4
	MaxBid  int = 7
)

// BidValues 所有合法叫品,0 表示 PASS
var BidValues = []int{BidPass, 4, 5, 6, 7}

// AllPassPolicy 四家都 PASS 時的處理方式
type AllPassPolicy string

const (
	// AllPassRedeal 此局作廢,由下一位發牌重新開局
	AllPassRedeal AllPassPolicy = "redeal"
	// AllPassFirstSeat 相容舊行為,第一位 PASS 的人以 0 得標
	AllPassFirstSeat AllPassPolicy = "first-seat"
)

type (
	//代表一個競叫
	bidItem struct {
		bidder Seat
		value  int
	}

	bidHistory struct {
		h []*bidItem // 競叫紀錄,依叫牌順序
	}

	// Contract 競叫結果
	Contract struct {
		Bid    int
		Bidder Seat
	}
)

func (c Contract) Team() Team {
	return c.Bidder.Team()
}

func (c Contract) String() string {
	return fmt.Sprintf("%s bids %d", c.Bidder, c.Bid)
}

func createBidHistory() *bidHistory {
	return &bidHistory{
		h: make([]*bidItem, 0, PlayersLimit),
	}
}

// 目前最高叫品
func (h *bidHistory) max() int {
	m := BidPass
	for _, b := range h.h {
		if b.value > m {
			m = b.value
		}
	}
	return m
}

// isLastBidder 下一個叫牌者是否為第四家
func (h *bidHistory) isLastBidder() bool {
	return len(h.h) == PlayersLimit-1
}

// IsBidFinished 四家都已叫牌
func (h *bidHistory) IsBidFinished() bool {
	return len(h.h) >= PlayersLimit
}

// Options 下一個叫牌者可叫的叫品
func (h *bidHistory) Options() []int {
	var (
		m       = h.max()
		options = []int{BidPass}
	)
	for _, v := range BidValues[1:] {
		if v > m || (v == m && h.isLastBidder()) {
			options = append(options, v)
		}
	}
	return options
}

// Values 叫品紀錄,依叫牌順序
func (h *bidHistory) Values() []int {
	values := make([]int, 0, len(h.h))
	for _, b := range h.h {
		values = append(values, b.value)
	}
	return values
}

func (h *bidHistory) bidders() []Seat {
	seats := make([]Seat, 0, len(h.h))
	for _, b := range h.h {
		seats = append(seats, b.bidder)
	}
	return seats
}

// validate 叫品必須是 PASS 或大於目前最高叫品,第四家可以等於最高叫品
func (h *bidHistory) validate(bid int) error {
	if h.IsBidFinished() {
		return fmt.Errorf("%w: bidding already finished", ErrInvalidSelection)
	}
	if !slices.Contains(BidValues, bid) {
		return fmt.Errorf("%w: bid %d must be one of %v", ErrInvalidSelection, bid, BidValues)
	}
	if !slices.Contains(h.Options(), bid) {
		return fmt.Errorf("%w: bid %d must pass or exceed %d", ErrInvalidSelection, bid, h.max())
	}
	return nil
}

// Bid 叫牌,並且存入叫牌紀錄. 第四家等於最高叫品時,其他三家叫品歸零
func (h *bidHistory) Bid(seat Seat, bid int) error {
	if err := h.validate(bid); err != nil {
		return err
	}

	if h.isLastBidder() && bid != BidPass && bid == h.max() {
		for _, b := range h.h {
			b.value = BidPass
		}
		slog.Debug("Bid", slog.String("FYI", fmt.Sprintf("第四家 %s 以 %d 取得合約,其他叫品歸零", seat, bid)))
	}
	h.h = append(h.h, &bidItem{bidder: seat, value: bid})
	return nil
}

// Resolve 四家叫完後找出得標者. allPass 表示四家都 PASS,此時 Contract 是第一位叫牌者以 0 得標
func (h *bidHistory) Resolve() (contract Contract, allPass bool, err error) {
	if !h.IsBidFinished() {
		return contract, false, fmt.Errorf("%w: %d of %d bids placed", ErrInvalidSelection, len(h.h), PlayersLimit)
	}
	var (
		seats      = h.bidders()
		_, idx, bv = ResolveBids(h.Values())
	)
	return Contract{Bid: bv, Bidder: seats[idx]}, bv == BidPass, nil
}

// ResolveBids 依叫牌順序的叫品決定得標者. 若最後一家等於前面最高叫品,前面叫品歸零.
// 得標叫品為最大值,得標者是第一個持有最大值的索引 (全 PASS 時即索引0)
func ResolveBids(bids []int) (values []int, winner int, bid int) {
	values = append([]int(nil), bids...)
	if len(values) == 0 {
		return values, 0, BidPass
	}

	last := len(values) - 1
	if prior := slices.Max(append([]int{BidPass}, values[:last]...)); len(values) == PlayersLimit && prior != BidPass && values[last] == prior {
		for i := 0; i < last; i++ {
			values[i] = BidPass
		}
	}

	bid = slices.Max(values)
	winner = slices.Index(values, bid)
	return values, winner, bid
}
