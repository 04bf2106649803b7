package advisor

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"bidwhist/game"
)

// 詢問種類
const (
	KindBid     = "bid"
	KindDiscard = "discard"
	KindTrump   = "trump"
	KindPlay    = "play"
)

const (
	roleText = "You are %s, sitting %s in a game of Bid Whist. Your partner sits %s. " +
		"You answer only with the number that is asked for."

	rulesText = "Bid Whist: four players in two partnerships (East-West, South-North). " +
		"Each player gets 12 cards, 6 cards form the kitty. Bids are 0 (pass) or 4 to 7 and must beat the highest bid; " +
		"the last bidder may take the contract by matching it. The winner takes the kitty, discards 6 cards and names trump. " +
		"Both jokers become trump: Big Joker beats Little Joker, which beats every other card. " +
		"Follow the suit that was led if you can; otherwise play anything. Highest trump wins the trick, else highest card of the led suit. " +
		"If the defenders take 8 minus the bid tricks they score the bid; otherwise the bidders score 7 minus the defenders' tricks. " +
		"First partnership to 21 wins."

	tipsText = "There are only 15 trump (including jokers). Count the trump that have been played. " +
		"Do not take a trick your partner is already winning. Lead trump when you hold most of them."
)

// Query 送給顧問的結構化內容
type Query struct {
	Seat     game.Seat
	Kind     string
	System   []string
	Context  *structpb.Struct
	Prompt   string
	Feedback string

	// Request 原始的決策請求,只有同程序內的顧問會使用
	Request any
}

func newQuery(name string, seat game.Seat, kind string, ctx map[string]any, prompt string, req any) (Query, error) {
	st, err := structpb.NewStruct(ctx)
	if err != nil {
		return Query{}, fmt.Errorf("advisor context: %w", err)
	}
	return Query{
		Seat: seat,
		Kind: kind,
		System: []string{
			fmt.Sprintf(roleText, name, seat, seat.Partner()),
			rulesText,
			tipsText,
		},
		Context: st,
		Prompt:  prompt,
		Request: req,
	}, nil
}

// restate 上次回答不合法,附上原因重新詢問
func (q Query) restate(raw string, reason error) Query {
	q.Feedback = fmt.Sprintf("Your previous answer %q was rejected (%v). Invalid selection. Try again.", raw, reason)
	return q
}

// ContextJSON 以 protojson 輸出結構化內容
func (q Query) ContextJSON() string {
	b, err := protojson.Marshal(q.Context)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// UserText 使用者訊息: 結構化內容 + 問題 (+ 重問原因)
func (q Query) UserText() string {
	var sb strings.Builder
	sb.WriteString(q.ContextJSON())
	sb.WriteString("\n")
	sb.WriteString(q.Prompt)
	if q.Feedback != "" {
		sb.WriteString("\n")
		sb.WriteString(q.Feedback)
	}
	return sb.String()
}

// Marshal 整個詢問編碼成 protojson,用於遠端顧問
func (q Query) Marshal() ([]byte, error) {
	system := make([]any, 0, len(q.System))
	for _, s := range q.System {
		system = append(system, s)
	}
	envelope, err := structpb.NewStruct(map[string]any{
		"seat":     q.Seat.String(),
		"kind":     q.Kind,
		"system":   system,
		"prompt":   q.Prompt,
		"feedback": q.Feedback,
	})
	if err != nil {
		return nil, err
	}
	envelope.Fields["context"] = structpb.NewStructValue(q.Context)
	return protojson.Marshal(envelope)
}

func indexedCards(cards []game.Card) []any {
	out := make([]any, 0, len(cards))
	for i, c := range cards {
		out = append(out, fmt.Sprintf("%d: %s", i, c))
	}
	return out
}

func cardNames(cards []game.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func trickPlays(t game.Trick) []any {
	out := make([]any, 0, len(t.Plays))
	for _, p := range t.Plays {
		out = append(out, map[string]any{"seat": p.Seat.String(), "card": p.Card.String()})
	}
	return out
}

func contractOf(c game.Contract) map[string]any {
	return map[string]any{"bidder": c.Bidder.String(), "bid": c.Bid}
}

func bidQuery(name string, req game.BidRequest) (Query, error) {
	bids := make([]any, 0, len(req.Bids))
	for i, b := range req.Bids {
		bids = append(bids, map[string]any{"seat": req.Bidders[i].String(), "bid": b})
	}
	options := make([]any, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, o)
	}
	ctx := map[string]any{
		"hand":       indexedCards(req.Hand),
		"bids":       bids,
		"options":    options,
		"lastBidder": req.Last,
		"scores": map[string]any{
			game.EastWest.String():   req.Scores[game.EastWest],
			game.SouthNorth.String(): req.Scores[game.SouthNorth],
		},
	}
	prompt := fmt.Sprintf("What do you bid? Answer with one of %v.", req.Options)
	return newQuery(name, req.Seat, KindBid, ctx, prompt, req)
}

func discardQuery(name string, req game.DiscardRequest) (Query, error) {
	ctx := map[string]any{
		"hand":     indexedCards(req.Hand),
		"count":    req.Count,
		"contract": contractOf(req.Contract),
	}
	prompt := fmt.Sprintf("You took the kitty. Which %d cards do you discard? Answer with %d different indexes from 0 to %d separated by spaces.",
		req.Count, req.Count, len(req.Hand)-1)
	return newQuery(name, req.Seat, KindDiscard, ctx, prompt, req)
}

func trumpQuery(name string, req game.TrumpRequest) (Query, error) {
	options := make([]any, 0, len(req.Options))
	for i, s := range req.Options {
		options = append(options, fmt.Sprintf("%d: %s", i, s))
	}
	ctx := map[string]any{
		"hand":     indexedCards(req.Hand),
		"options":  options,
		"contract": contractOf(req.Contract),
	}
	prompt := fmt.Sprintf("Which suit is trump? Answer with an index from 0 to %d.", len(req.Options)-1)
	return newQuery(name, req.Seat, KindTrump, ctx, prompt, req)
}

func playQuery(name string, req game.PlayRequest) (Query, error) {
	history := make([]any, 0, len(req.History))
	for _, t := range req.History {
		history = append(history, trickPlays(t))
	}
	ctx := map[string]any{
		"hand":         indexedCards(req.Hand),
		"legal":        cardNames(req.Legal),
		"currentTrick": trickPlays(req.Trick),
		"gameHistory":  history,
		"trump":        req.Trump.String(),
		"contract":     contractOf(req.Contract),
		"tricks": map[string]any{
			game.EastWest.String():   req.Tricks[game.EastWest],
			game.SouthNorth.String(): req.Tricks[game.SouthNorth],
		},
	}
	prompt := fmt.Sprintf("Which card do you play? Answer with the index of a legal card from 0 to %d.", len(req.Hand)-1)
	return newQuery(name, req.Seat, KindPlay, ctx, prompt, req)
}
