package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"bidwhist/game"
)

const invalidSelection = "Invalid selection. Try again."

// Human 由終端機讀取真人輸入的玩家. 每個決定讀一行,不合法就重問,輸入 -1 立即結束遊戲
type Human struct {
	name string
	seat game.Seat
	in   *bufio.Scanner
	out  io.Writer
	echo func(line string)
}

type Option func(*Human)

// WithEcho 每行顯示給玩家的文字同時送給 echo (例如對局紀錄)
func WithEcho(echo func(line string)) Option {
	return func(h *Human) {
		if echo != nil {
			h.echo = echo
		}
	}
}

func NewHuman(name string, seat game.Seat, in io.Reader, out io.Writer, opts ...Option) *Human {
	h := &Human{
		name: name,
		seat: seat,
		in:   bufio.NewScanner(in),
		out:  out,
		echo: func(string) {},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// sayLine 原樣輸出一行,不做格式化
func (h *Human) sayLine(line string) {
	fmt.Fprintln(h.out, line)
	h.echo(line)
}

func (h *Human) sayf(format string, args ...any) {
	h.sayLine(fmt.Sprintf(format, args...))
}

// readLine 讀一行輸入,輸入結束視同離開
func (h *Human) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", game.ErrQuit
	}
	line := strings.TrimSpace(h.in.Text())
	h.echo("> " + line)
	return line, nil
}

// choose 讀取直到 parse 成功; parse 回傳可恢復錯誤時提示重新輸入
func choose[T any](ctx context.Context, h *Human, parse func(line string) (T, error)) (v T, err error) {
	for {
		var line string
		if line, err = h.readLine(ctx); err != nil {
			return v, err
		}
		if v, err = parse(line); err == nil {
			return v, nil
		}
		if !game.Recoverable(err) {
			return v, err
		}
		slog.Debug("Human", slog.String("FYI", fmt.Sprintf("%s 輸入 %q: %s", h.seat, line, err)))
		h.sayLine(warn(invalidSelection))
	}
}

// isQuit 整行只有 -1 才表示離開
func isQuit(line string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	return err == nil && n == game.QuitSentinel
}

// parseIndex 單一整數
func parseIndex(line string) (int, error) {
	if isQuit(line) {
		return 0, game.ErrQuit
	}
	return game.ParseChoice(line)
}

func (h *Human) ProposeBid(ctx context.Context, req game.BidRequest) (int, error) {
	h.sayLine(title(fmt.Sprintf("%s (%s), your hand:", h.name, req.Seat)))
	h.sayLine(renderHand(req.Hand, nil))
	for i, b := range req.Bids {
		h.sayf("%s bid %d", req.Bidders[i], b)
	}
	h.sayf("Enter your bid %v (0 to pass, %d to quit):", req.Options, game.QuitSentinel)

	return choose(ctx, h, func(line string) (int, error) {
		bid, err := parseIndex(line)
		if err != nil {
			return 0, err
		}
		return bid, game.ValidateBid(req, bid)
	})
}

func (h *Human) ProposeDiscard(ctx context.Context, req game.DiscardRequest) ([]int, error) {
	h.sayLine(title(fmt.Sprintf("%s, you won the bid with %d and took the kitty:", h.name, req.Contract.Bid)))
	h.sayLine(renderHand(req.Hand, nil))
	h.sayf("Select %d cards to discard, indexes separated by spaces (%d to quit):", req.Count, game.QuitSentinel)

	return choose(ctx, h, func(line string) ([]int, error) {
		if isQuit(line) {
			return nil, game.ErrQuit
		}
		indexes, err := game.ParseChoices(line)
		if err != nil {
			return nil, err
		}
		return indexes, game.ValidateDiscard(req, indexes)
	})
}

func (h *Human) ProposeTrump(ctx context.Context, req game.TrumpRequest) (game.Suit, error) {
	h.sayLine(title(fmt.Sprintf("%s, select trump:", h.name)))
	h.sayLine(renderHand(req.Hand, nil))
	for i, s := range req.Options {
		h.sayf("%d: %s", i, bold(suitColorMap[s]).Render(s.String()))
	}
	h.sayf("Enter the index of the trump suit (%d to quit):", game.QuitSentinel)

	return choose(ctx, h, func(line string) (game.Suit, error) {
		idx, err := parseIndex(line)
		if err != nil {
			return game.NoSuit, err
		}
		return game.TrumpChoice(req, idx)
	})
}

func (h *Human) ProposeCard(ctx context.Context, req game.PlayRequest) (int, error) {
	h.sayLine(title(fmt.Sprintf("%s (%s), trump is %s. %s", h.name, req.Seat, req.Trump, req.Contract)))
	h.sayLine(renderTrick(req.Trick))
	h.sayLine(renderHand(req.Hand, req.Legal))
	h.sayf("Select a card to play (%d to quit):", game.QuitSentinel)

	return choose(ctx, h, func(line string) (int, error) {
		idx, err := parseIndex(line)
		if err != nil {
			return 0, err
		}
		return idx, game.ValidatePlay(req, idx)
	})
}

// Notify 顯示公開事件,私人事件只顯示自己的
func (h *Human) Notify(e game.Event) {
	if e.Private && e.Seat != h.seat {
		return
	}
	switch e.Name {
	case game.HandEvents.PrivateDeal, game.HandEvents.Retry:
		return
	case game.HandEvents.Play:
		if e.Seat == h.seat {
			return
		}
		h.sayf("%s plays %s", e.Seat, renderCard(e.Cards[0]))
	default:
		h.sayLine(e.String())
	}
}
