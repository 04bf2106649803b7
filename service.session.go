package bidwhist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	uuid "github.com/iris-contrib/go.uuid"
	utilog "github.com/moszorn/utils/log"

	"bidwhist/game"
)

type (
	// Session 一場比賽: 重複進行牌局直到某一隊達到目標分數
	Session struct {
		ID    string
		state *game.GameState
		table *game.Table

		report  func(line string)
		closers []io.Closer
	}
)

// newID 產生 UUID v4, 失敗時退回固定值
func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		slog.Warn("newID", utilog.Err(err))
		return "00000000-0000-4000-8000-000000000000"
	}
	return id.String()
}

// State 目前的比賽狀態
func (s *Session) State() *game.GameState {
	return s.state
}

// Run 進行牌局直到分出勝負,回傳獲勝隊伍
func (s *Session) Run(ctx context.Context) (game.Team, error) {
	slog.Info("Session", slog.String("game", s.ID), slog.Int("target", s.state.Board.Target()))

	for {
		if team, ok := s.state.Winner(); ok {
			s.standings(fmt.Sprintf("%s wins the game.", team))
			return team, nil
		}

		hs, err := s.table.PlayHand(ctx, s.state)
		if err != nil {
			return 0, s.wrap(hs, err)
		}
		if hs.Result.Redeal {
			continue
		}
		s.standings(fmt.Sprintf("After hand %d:", hs.Number))
	}
}

func (s *Session) standings(head string) {
	scores := s.state.Scores()
	s.report(head)
	for _, team := range []game.Team{game.EastWest, game.SouthNorth} {
		seats := team.Seats()
		s.report(fmt.Sprintf("  %s (%s & %s): %d", team, s.state.Name(seats[0]), s.state.Name(seats[1]), scores[team]))
	}
}

// wrap 依錯誤種類加上錯誤碼
func (s *Session) wrap(hs *game.HandState, err error) error {
	reason := fmt.Sprintf("hand %d, phase %s", hs.Number, hs.Phase)
	switch {
	case errors.Is(err, game.ErrQuit):
		return &AppErr{Code: DecisionCode, Msg: "player quit", Err: err, reason: reason}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &AppErr{Code: GeneralCode, Msg: "game interrupted", Err: err, reason: reason}
	case errors.Is(err, game.ErrCardCount), errors.Is(err, game.ErrEmptyDeck), errors.Is(err, game.ErrEmptyTrick),
		errors.Is(err, game.ErrDuplicatePlay), errors.Is(err, game.ErrTrickFull):
		return &AppErr{Code: RuleCode, Msg: "rule violation", Err: err, reason: reason}
	}
	return &AppErr{Code: DecisionCode, Msg: "decision failed", Err: err, reason: reason}
}

// Close 關閉顧問連線與牌局紀錄
func (s *Session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
