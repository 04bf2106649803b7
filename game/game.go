package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	utilog "github.com/moszorn/utils/log"
)

const (
	// DefaultMaxAttempts 同一個決定最多詢問次數,超過後採用第一個合法選項
	DefaultMaxAttempts int = 5
)

type (
	// GameState 跨局保存的狀態,由呼叫者持有
	GameState struct {
		ID     string
		Names  [PlayersLimit]string
		Seats  *SeatManager
		Board  *ScoreBoard
		Dealer Seat
		Played int // 已進行局數(含作廢局)
	}

	// HandState 一局的狀態,每個階段都在此讀寫
	HandState struct {
		ID       string
		Number   int
		Phase    Phase
		Hands    [PlayersLimit][]Card
		Kitty    []Card
		Discards []Card
		Bids     []int
		Bidders  []Seat
		Contract Contract
		Trump    Suit
		Trick    Trick
		History  []Trick
		Result   HandResult
	}

	// Table 牌桌,依座位向決策來源詢問,驅動一局的狀態機
	Table struct {
		sources     [PlayersLimit]DecisionSource
		rng         *rand.Rand
		maxAttempts int
		allPass     AllPassPolicy
		observer    Observer
		handID      func() string
	}

	TableOption func(*Table)
)

// NewGameState 第一局由北家發牌,東家先叫
func NewGameState(id string, names [PlayersLimit]string, target int) *GameState {
	return &GameState{
		ID:     id,
		Names:  names,
		Seats:  NewSeatManager(East),
		Board:  NewScoreBoard(target),
		Dealer: North,
	}
}

func (gs *GameState) Name(seat Seat) string {
	if gs.Names[seat] == "" {
		return seat.String()
	}
	return gs.Names[seat]
}

func (gs *GameState) Scores() [2]int {
	return [2]int{gs.Board.Score(EastWest), gs.Board.Score(SouthNorth)}
}

// Winner 是否有隊伍達到目標分數
func (gs *GameState) Winner() (Team, bool) {
	return gs.Board.Winner()
}

// CardCount 手牌,底牌,棄牌,已出的牌總數
func (hs *HandState) CardCount() int {
	n := len(hs.Kitty) + len(hs.Discards) + hs.Trick.Len()
	for i := range hs.Hands {
		n += len(hs.Hands[i])
	}
	for i := range hs.History {
		n += hs.History[i].Len()
	}
	return n
}

func (hs *HandState) checkCards() error {
	if n := hs.CardCount(); n != NumOfCardsInDeck {
		return fmt.Errorf("%w: %d cards during %s", ErrCardCount, n, hs.Phase)
	}
	return nil
}

func WithRand(r *rand.Rand) TableOption {
	return func(t *Table) {
		if r != nil {
			t.rng = r
		}
	}
}

func WithMaxAttempts(n int) TableOption {
	return func(t *Table) {
		if n > 0 {
			t.maxAttempts = n
		}
	}
}

func WithAllPassPolicy(p AllPassPolicy) TableOption {
	return func(t *Table) {
		if p == AllPassRedeal || p == AllPassFirstSeat {
			t.allPass = p
		}
	}
}

func WithObserver(o Observer) TableOption {
	return func(t *Table) {
		if o != nil {
			t.observer = o
		}
	}
}

func WithHandID(gen func() string) TableOption {
	return func(t *Table) {
		if gen != nil {
			t.handID = gen
		}
	}
}

func NewTable(sources [PlayersLimit]DecisionSource, opts ...TableOption) *Table {
	t := &Table{
		sources:     sources,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		maxAttempts: DefaultMaxAttempts,
		allPass:     AllPassRedeal,
		observer:    nopObserver{},
		handID:      func() string { return "" },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) notify(e Event) {
	slog.Debug("notify", slog.Any("event", e))
	t.observer.Notify(e)
}

// PlayHand 進行一局: 發牌 -> 競叫 -> 換底牌 -> 宣告王牌 -> 打牌 -> 結算.
// 四家 PASS 且規則為重發時,回傳的 HandState.Result.Redeal 為 true,分數不變
func (t *Table) PlayHand(ctx context.Context, gs *GameState) (hs *HandState, err error) {
	gs.Played++
	hs = &HandState{
		ID:     t.handID(),
		Number: gs.Played,
		Phase:  PhaseDealing,
		Trump:  NoSuit,
	}

	gs.Board.ResetTricks()
	gs.Seats.RotateToFront(gs.Dealer.Next())
	defer func() {
		gs.Dealer = gs.Dealer.Next()
		if err != nil {
			slog.Error("PlayHand", slog.Int("hand", hs.Number), slog.String("phase", hs.Phase.String()), utilog.Err(err))
		}
	}()

	if err = t.dealing(hs); err != nil {
		return hs, err
	}
	if err = t.bidding(ctx, gs, hs); err != nil {
		return hs, err
	}
	if hs.Result.Redeal {
		hs.Phase = PhaseHandScored
		return hs, nil
	}
	if err = t.kittyExchange(ctx, hs); err != nil {
		return hs, err
	}
	if err = t.trumpDeclaration(ctx, hs); err != nil {
		return hs, err
	}
	if err = t.trickPlay(ctx, gs, hs); err != nil {
		return hs, err
	}

	hs.Phase = PhaseHandScored
	gs.Board.Apply(hs.Result)
	t.notify(Event{Name: HandEvents.Scored, Hand: hs.Number, Seat: hs.Contract.Bidder, Result: hs.Result})
	return hs, nil
}

func (t *Table) dealing(hs *HandState) error {
	deck := BuildDeck()
	deck.Shuffle(t.rng)

	hands, kitty, err := deal(deck)
	if err != nil {
		return err
	}
	hs.Hands, hs.Kitty = hands, kitty

	for _, seat := range playerSeats {
		t.notify(Event{Name: HandEvents.PrivateDeal, Hand: hs.Number, Seat: seat, Private: true, Cards: cloneCards(hands[seat])})
	}
	return hs.checkCards()
}

func (t *Table) bidding(ctx context.Context, gs *GameState, hs *HandState) error {
	hs.Phase = PhaseBidding
	history := createBidHistory()

	for _, seat := range gs.Seats.Order() {
		req := BidRequest{
			Seat:    seat,
			Hand:    cloneCards(hs.Hands[seat]),
			Bidders: history.bidders(),
			Bids:    history.Values(),
			Options: history.Options(),
			Last:    history.isLastBidder(),
			Scores:  gs.Scores(),
		}
		source := t.sources[seat]
		bid, err := decide(ctx, t, hs, seat,
			func(ctx context.Context) (int, error) { return source.ProposeBid(ctx, req) },
			func(v int) error { return ValidateBid(req, v) },
			func() int { return firstBid(req) })
		if err != nil {
			return err
		}
		if err = history.Bid(seat, bid); err != nil {
			return err
		}
		t.notify(Event{Name: HandEvents.Bid, Hand: hs.Number, Seat: seat, Bid: bid})
	}

	contract, allPass, err := history.Resolve()
	if err != nil {
		return err
	}
	hs.Bids, hs.Bidders = history.Values(), history.bidders()

	if allPass && t.allPass == AllPassRedeal {
		hs.Result = HandResult{Redeal: true}
		t.notify(Event{Name: HandEvents.AllPass, Hand: hs.Number, Seat: gs.Dealer})
		return nil
	}

	hs.Contract = contract
	gs.Seats.RotateToFront(contract.Bidder)
	t.notify(Event{Name: HandEvents.Contract, Hand: hs.Number, Seat: contract.Bidder, Bid: contract.Bid})
	return nil
}

func (t *Table) kittyExchange(ctx context.Context, hs *HandState) error {
	hs.Phase = PhaseKittyExchange
	bidder := hs.Contract.Bidder

	t.notify(Event{Name: HandEvents.PrivateKitty, Hand: hs.Number, Seat: bidder, Private: true, Cards: cloneCards(hs.Kitty)})
	hs.Hands[bidder] = append(hs.Hands[bidder], hs.Kitty...)
	hs.Kitty = nil
	SortHand(hs.Hands[bidder])

	req := DiscardRequest{
		Seat:     bidder,
		Hand:     cloneCards(hs.Hands[bidder]),
		Count:    NumOfKittyCards,
		Contract: hs.Contract,
	}
	source := t.sources[bidder]
	indexes, err := decide(ctx, t, hs, bidder,
		func(ctx context.Context) ([]int, error) { return source.ProposeDiscard(ctx, req) },
		func(v []int) error { return ValidateDiscard(req, v) },
		func() []int { return firstDiscard(req) })
	if err != nil {
		return err
	}

	hs.Hands[bidder], hs.Discards = removeCards(hs.Hands[bidder], indexes)
	t.notify(Event{Name: HandEvents.PrivateDiscard, Hand: hs.Number, Seat: bidder, Private: true, Cards: cloneCards(hs.Discards)})
	return hs.checkCards()
}

func (t *Table) trumpDeclaration(ctx context.Context, hs *HandState) error {
	hs.Phase = PhaseTrumpDeclaration
	bidder := hs.Contract.Bidder

	req := TrumpRequest{
		Seat:     bidder,
		Hand:     cloneCards(hs.Hands[bidder]),
		Options:  append([]Suit(nil), TrumpOptions[:]...),
		Contract: hs.Contract,
	}
	source := t.sources[bidder]
	suit, err := decide(ctx, t, hs, bidder,
		func(ctx context.Context) (Suit, error) { return source.ProposeTrump(ctx, req) },
		func(v Suit) error { return ValidateTrump(req, v) },
		func() Suit { return firstTrump(req) })
	if err != nil {
		return err
	}

	hs.Trump = suit
	for seat := range hs.Hands {
		for i := range hs.Hands[seat] {
			hs.Hands[seat][i] = hs.Hands[seat][i].convert(suit)
		}
	}
	t.notify(Event{Name: HandEvents.Trump, Hand: hs.Number, Seat: bidder, Trump: suit})
	return nil
}

func (t *Table) trickPlay(ctx context.Context, gs *GameState, hs *HandState) error {
	hs.Phase = PhaseTrickPlay

	for {
		hs.Trick = Trick{}
		for _, seat := range gs.Seats.Order() {
			hand := hs.Hands[seat]
			req := PlayRequest{
				Seat:     seat,
				Hand:     cloneCards(hand),
				Legal:    LegalPlays(&hs.Trick, hand),
				Trick:    hs.Trick.clone(),
				History:  cloneTricks(hs.History),
				Trump:    hs.Trump,
				Contract: hs.Contract,
				Tricks:   [2]int{gs.Board.Tricks(EastWest), gs.Board.Tricks(SouthNorth)},
			}
			source := t.sources[seat]
			idx, err := decide(ctx, t, hs, seat,
				func(ctx context.Context) (int, error) { return source.ProposeCard(ctx, req) },
				func(v int) error { return ValidatePlay(req, v) },
				func() int { return firstPlay(req) })
			if err != nil {
				return err
			}

			card := hand[idx]
			hs.Hands[seat] = append(hand[:idx:idx], hand[idx+1:]...)
			if err = hs.Trick.Add(seat, card); err != nil {
				return err
			}
			t.notify(Event{Name: HandEvents.Play, Hand: hs.Number, Seat: seat, Cards: []Card{card}})
		}

		win, err := hs.Trick.Winner(hs.Trump)
		if err != nil {
			return err
		}
		gs.Board.CreditTrick(win.Seat)
		gs.Seats.RotateToFront(win.Seat)
		hs.History = append(hs.History, hs.Trick)
		t.notify(Event{Name: HandEvents.Trick, Hand: hs.Number, Seat: win.Seat, Cards: hs.Trick.Cards()})
		hs.Trick = Trick{}

		if err = hs.checkCards(); err != nil {
			return err
		}
		if result, done := gs.Board.settle(hs.Contract, len(hs.Hands[gs.Seats.Head()]) == 0); done {
			hs.Result = result
			return nil
		}
	}
}

// decide 詢問決策來源並驗證,可恢復錯誤重新詢問,超過次數採用 fallback
func decide[T any](ctx context.Context, t *Table, hs *HandState, seat Seat,
	propose func(context.Context) (T, error), check func(T) error, fallback func() T) (v T, err error) {

	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return v, err
		}
		if v, err = propose(ctx); err == nil {
			err = check(v)
		}
		if err == nil {
			return v, nil
		}
		if !Recoverable(err) {
			return v, err
		}
		slog.Debug("decide", slog.String("FYI", fmt.Sprintf("%s 第%d次回答不合法: %s", seat, attempt, err)))
		t.notify(Event{Name: HandEvents.Retry, Hand: hs.Number, Seat: seat, Err: err})
	}

	slog.Warn("decide", slog.String("seat", seat.String()), slog.Int("attempts", t.maxAttempts), slog.String("phase", hs.Phase.String()))
	t.notify(Event{Name: HandEvents.Fallback, Hand: hs.Number, Seat: seat})
	return fallback(), nil
}

func (t *Trick) clone() Trick {
	return Trick{Plays: append([]Play(nil), t.Plays...)}
}

func cloneCards(cards []Card) []Card {
	return append([]Card(nil), cards...)
}

func cloneTricks(tricks []Trick) []Trick {
	out := make([]Trick, 0, len(tricks))
	for i := range tricks {
		out = append(out, tricks[i].clone())
	}
	return out
}
