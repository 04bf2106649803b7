package bidwhist

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"bidwhist/config"
	"bidwhist/game"
)

type (
	initOptions struct {
		transcript func(gameID string) *Transcript
		answerLog  func(seat game.Seat, kind, raw string)
	}

	InitOption func(*initOptions)
)

// WithTranscript 取代預設的檔案紀錄 (測試用)
func WithTranscript(open func(gameID string) *Transcript) InitOption {
	return func(o *initOptions) {
		o.transcript = open
	}
}

// WithAnswerLog 取代預設的 AI 紀錄檔
func WithAnswerLog(l func(seat game.Seat, kind, raw string)) InitOption {
	return func(o *initOptions) {
		o.answerLog = l
	}
}

// InitProject 必須由 main呼叫. 依設定建立牌局紀錄,決策來源與牌桌
func InitProject(cfg *config.Config, in io.Reader, out io.Writer, opts ...InitOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, AppError(ConfigCode, "invalid configuration", err)
	}

	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}

	gameID := newID()
	transcript := o.transcript
	if transcript == nil {
		path := cfg.TranscriptPath
		transcript = func(id string) *Transcript { return FileTranscript(path, id) }
	}

	env := &sourceEnv{
		cfg:        cfg,
		in:         in,
		out:        out,
		transcript: transcript(gameID),
		answered:   o.answerLog,
	}
	env.closers = append(env.closers, env.transcript)

	sources, err := buildSources(env)
	if err != nil {
		_ = env.transcript.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var names [game.PlayersLimit]string
	for i, p := range cfg.Players {
		names[i] = p.Name
	}

	table := game.NewTable(sources,
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithMaxAttempts(cfg.MaxAttempts),
		game.WithAllPassPolicy(game.AllPassPolicy(cfg.AllPass)),
		game.WithObserver(game.Broadcast(env.observers()...)),
		game.WithHandID(newID),
	)

	s := &Session{
		ID:      gameID,
		state:   game.NewGameState(gameID, names, cfg.TargetScore),
		table:   table,
		closers: env.closers,
	}
	s.report = func(line string) {
		fmt.Fprintln(out, line)
		env.transcript.Line(line)
	}

	slog.Debug("InitProject", slog.String("game", gameID), slog.Int64("seed", seed), slog.String("allPass", cfg.AllPass))
	env.transcript.Line(fmt.Sprintf("game %s, seed %d, target %d", gameID, seed, cfg.TargetScore))
	return s, nil
}
