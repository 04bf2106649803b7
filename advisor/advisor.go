package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	utilog "github.com/moszorn/utils/log"

	"bidwhist/game"
)

// DefaultAttempts 一次決策中向顧問詢問的次數
const DefaultAttempts = 3

type (
	// Advisor 顧問收到結構化內容,回傳自由文字
	Advisor interface {
		Ask(ctx context.Context, q Query) (string, error)
	}

	// AnswerLog 記錄顧問原始回答
	AnswerLog func(seat game.Seat, kind, raw string)

	// Automated 由顧問提供決策的玩家,回答一律重新解析與驗證
	Automated struct {
		name     string
		advisor  Advisor
		attempts int
		record   AnswerLog
	}

	Option func(*Automated)
)

func WithAttempts(n int) Option {
	return func(a *Automated) {
		if n > 0 {
			a.attempts = n
		}
	}
}

func WithAnswerLog(l AnswerLog) Option {
	return func(a *Automated) {
		if l != nil {
			a.record = l
		}
	}
}

func NewAutomated(name string, adv Advisor, opts ...Option) *Automated {
	a := &Automated{
		name:     name,
		advisor:  adv,
		attempts: DefaultAttempts,
		record:   func(game.Seat, string, string) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Automated) ProposeBid(ctx context.Context, req game.BidRequest) (int, error) {
	q, err := bidQuery(a.name, req)
	if err != nil {
		return 0, err
	}
	return ask(ctx, a, q, func(raw string) (int, error) {
		bid, err := game.ParseChoice(raw)
		if err != nil {
			return 0, err
		}
		return bid, game.ValidateBid(req, bid)
	})
}

func (a *Automated) ProposeDiscard(ctx context.Context, req game.DiscardRequest) ([]int, error) {
	q, err := discardQuery(a.name, req)
	if err != nil {
		return nil, err
	}
	return ask(ctx, a, q, func(raw string) ([]int, error) {
		indexes, err := game.ParseChoices(raw)
		if err != nil {
			return nil, err
		}
		return indexes, game.ValidateDiscard(req, indexes)
	})
}

func (a *Automated) ProposeTrump(ctx context.Context, req game.TrumpRequest) (game.Suit, error) {
	q, err := trumpQuery(a.name, req)
	if err != nil {
		return game.NoSuit, err
	}
	return ask(ctx, a, q, func(raw string) (game.Suit, error) {
		idx, err := game.ParseChoice(raw)
		if err != nil {
			return game.NoSuit, err
		}
		return game.TrumpChoice(req, idx)
	})
}

func (a *Automated) ProposeCard(ctx context.Context, req game.PlayRequest) (int, error) {
	q, err := playQuery(a.name, req)
	if err != nil {
		return 0, err
	}
	return ask(ctx, a, q, func(raw string) (int, error) {
		idx, err := game.ParseChoice(raw)
		if err != nil {
			return 0, err
		}
		return idx, game.ValidatePlay(req, idx)
	})
}

// ask 詢問顧問直到回答可用,失敗時附上原因重問,次數用完回傳 ErrNoUsableAnswer
func ask[T any](ctx context.Context, a *Automated, q Query, parse func(raw string) (T, error)) (v T, err error) {
	var raw string
	for attempt := 1; attempt <= a.attempts; attempt++ {
		if raw, err = a.advisor.Ask(ctx, q); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return v, ctxErr
			}
			slog.Warn("advisor", slog.String("seat", q.Seat.String()), slog.String("kind", q.Kind), utilog.Err(err))
			continue
		}

		a.record(q.Seat, q.Kind, raw)
		if v, err = parse(raw); err == nil {
			return v, nil
		}
		if !game.Recoverable(err) {
			return v, err
		}
		slog.Debug("advisor", slog.String("FYI", fmt.Sprintf("%s %s 第%d次回答 %q 不合法: %s", q.Seat, q.Kind, attempt, raw, err)))
		q = q.restate(raw, err)
	}

	if err == nil {
		err = errors.New("advisor gave no answer")
	}
	return v, fmt.Errorf("%w: %s after %d attempts: %v", game.ErrNoUsableAnswer, q.Kind, a.attempts, err)
}
