package bidwhist

import (
	"fmt"
	"io"
	"log/slog"

	llg "github.com/moszorn/utils/log"

	"bidwhist/advisor"
	"bidwhist/config"
	"bidwhist/console"
	"bidwhist/game"
)

type (
	// sourceEnv 建立決策來源時共用的資源,顧問連線與 AI 紀錄檔只建立一次
	sourceEnv struct {
		cfg        *config.Config
		in         io.Reader
		out        io.Writer
		transcript *Transcript

		humans   []*console.Human
		openai   *advisor.OpenAI
		remote   *advisor.Remote
		aiLog    *llg.MyLog
		answered func(seat game.Seat, kind, raw string)
		closers  []io.Closer
	}

	// sourceFactory 依玩家種類建立決策來源
	sourceFactory func(env *sourceEnv, seat game.Seat, p config.Player) (game.DecisionSource, error)
)

var sourceFactories = map[string]sourceFactory{
	config.KindHuman:     humanSource,
	config.KindHeuristic: heuristicSource,
	config.KindOpenAI:    openAISource,
	config.KindRemote:    remoteSource,
}

// buildSources 依座位 (東南西北) 建立四個決策來源
func buildSources(env *sourceEnv) (sources [game.PlayersLimit]game.DecisionSource, err error) {
	for i, p := range env.cfg.Players {
		factory, ok := sourceFactories[p.Kind]
		if !ok {
			return sources, AppError(ConfigCode, fmt.Sprintf("player %d has unknown kind %q", i+1, p.Kind), p)
		}
		seat := game.Seat(i)
		if sources[i], err = factory(env, seat, p); err != nil {
			return sources, err
		}
		slog.Debug("buildSources", slog.String("FYI", fmt.Sprintf("%s %s(%s)", seat, p.Name, p.Kind)))
	}
	return sources, nil
}

func humanSource(env *sourceEnv, seat game.Seat, p config.Player) (game.DecisionSource, error) {
	if len(env.humans) > 0 {
		return nil, AppError(ConfigCode, "only one human player can share the console", p)
	}
	h := console.NewHuman(p.Name, seat, env.in, env.out, console.WithEcho(env.transcript.Line))
	env.humans = append(env.humans, h)
	return h, nil
}

func heuristicSource(env *sourceEnv, _ game.Seat, p config.Player) (game.DecisionSource, error) {
	return env.automated(p.Name, advisor.Heuristic{}), nil
}

func openAISource(env *sourceEnv, _ game.Seat, p config.Player) (game.DecisionSource, error) {
	if env.cfg.OpenAI.APIKey == "" {
		return nil, AppError(AdvisorCode, "OPENAI_API_KEY is not set", p)
	}
	if env.openai == nil {
		o := env.cfg.OpenAI
		env.openai = advisor.NewOpenAI(o.BaseURL, o.APIKey, o.Model, o.Timeout())
	}
	return env.automated(p.Name, env.openai), nil
}

func remoteSource(env *sourceEnv, _ game.Seat, p config.Player) (game.DecisionSource, error) {
	if env.cfg.Remote.URL == "" {
		return nil, AppError(AdvisorCode, "remote advisor url is not set", p)
	}
	if env.remote == nil {
		r := env.cfg.Remote
		env.remote = advisor.NewRemote(r.URL, r.Namespace, r.Event, r.Timeout())
		env.closers = append(env.closers, env.remote)
	}
	return env.automated(p.Name, env.remote), nil
}

func (env *sourceEnv) automated(name string, adv advisor.Advisor) *advisor.Automated {
	return advisor.NewAutomated(name, adv, advisor.WithAnswerLog(env.answerLog()))
}

// answerLog 自動玩家的原始回答寫入 AI 紀錄檔
func (env *sourceEnv) answerLog() advisor.AnswerLog {
	if env.answered != nil {
		return env.answered
	}
	if env.aiLog == nil {
		env.aiLog = llg.NewMyLog(env.cfg.AILogPath, slog.LevelDebug, llg.FileLog)
	}
	aiLog := env.aiLog
	return func(seat game.Seat, kind, raw string) {
		aiLog.Dbg("advisor", slog.String("seat", seat.String()), slog.String("kind", kind), slog.String("answer", raw))
	}
}

// observers 真人玩家也要收到牌局事件
func (env *sourceEnv) observers() []game.Observer {
	obs := []game.Observer{env.transcript}
	for _, h := range env.humans {
		obs = append(obs, h)
	}
	return obs
}
