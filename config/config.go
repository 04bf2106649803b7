package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 玩家種類
const (
	KindHuman     = "human"
	KindHeuristic = "heuristic"
	KindOpenAI    = "openai"
	KindRemote    = "remote"
)

type (
	Player struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	}

	OpenAI struct {
		APIKey         string `json:"-"`
		Model          string `json:"model"`
		BaseURL        string `json:"base_url"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	}

	Remote struct {
		URL            string `json:"url"`
		Namespace      string `json:"namespace"`
		Event          string `json:"event"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	}

	Config struct {
		Players     [4]Player `json:"players"`
		TargetScore int       `json:"target_score"`
		MaxAttempts int       `json:"max_attempts"`
		// AllPass 四家 PASS: "redeal" 或 "first-seat"
		AllPass        string `json:"all_pass"`
		Seed           int64  `json:"seed"`
		TranscriptPath string `json:"transcript_path"`
		AILogPath      string `json:"ai_log_path"`
		LogLevel       string `json:"log_level"`
		OpenAI         OpenAI `json:"openai"`
		Remote         Remote `json:"remote"`
	}
)

// Default 一位真人(東)與三位自動玩家
func Default() *Config {
	return &Config{
		Players: [4]Player{
			{Name: "Player 1", Kind: KindHuman},
			{Name: "Player 2", Kind: KindHeuristic},
			{Name: "Player 3", Kind: KindHeuristic},
			{Name: "Player 4", Kind: KindHeuristic},
		},
		TargetScore:    21,
		MaxAttempts:    5,
		AllPass:        "redeal",
		TranscriptPath: ".log",
		AILogPath:      "ai.log",
		LogLevel:       "warn",
		OpenAI: OpenAI{
			Model:          "gpt-3.5-turbo",
			BaseURL:        "https://api.openai.com/v1",
			TimeoutSeconds: 40,
		},
		Remote: Remote{
			Namespace:      "bidwhist.advisor",
			Event:          "advise",
			TimeoutSeconds: 40,
		},
	}
}

// Load 預設值 -> JSON 設定檔(可省略) -> .env -> 環境變數
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err = json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Load", slog.String("FYI", fmt.Sprintf("players %v target %d attempts %d all-pass %s",
		cfg.Players, cfg.TargetScore, cfg.MaxAttempts, cfg.AllPass)))
	return cfg, nil
}

func (cfg *Config) applyEnv() (err error) {
	for i := range cfg.Players {
		// BIDWHIST_PLAYER1=Alice:human
		if v := os.Getenv(fmt.Sprintf("BIDWHIST_PLAYER%d", i+1)); v != "" {
			name, kind, found := strings.Cut(v, ":")
			if name != "" {
				cfg.Players[i].Name = name
			}
			if found && kind != "" {
				cfg.Players[i].Kind = kind
			}
		}
	}

	if cfg.TargetScore, err = envInt("BIDWHIST_TARGET", cfg.TargetScore); err != nil {
		return err
	}
	if cfg.MaxAttempts, err = envInt("BIDWHIST_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return err
	}
	if v := os.Getenv("BIDWHIST_SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("BIDWHIST_SEED: %w", err)
		}
	}

	cfg.AllPass = envString("BIDWHIST_ALL_PASS", cfg.AllPass)
	cfg.TranscriptPath = envString("BIDWHIST_TRANSCRIPT", cfg.TranscriptPath)
	cfg.AILogPath = envString("BIDWHIST_AI_LOG", cfg.AILogPath)
	cfg.LogLevel = envString("BIDWHIST_LOG_LEVEL", cfg.LogLevel)

	cfg.OpenAI.APIKey = envString("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = envString("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = envString("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.Remote.URL = envString("BIDWHIST_ADVISOR_URL", cfg.Remote.URL)
	return nil
}

// Validate 檢查設定是否可用
func (cfg *Config) Validate() error {
	for i, p := range cfg.Players {
		switch p.Kind {
		case KindHuman, KindHeuristic:
		case KindOpenAI:
			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("player %d uses %s but OPENAI_API_KEY is not set", i+1, p.Kind)
			}
		case KindRemote:
			if cfg.Remote.URL == "" {
				return fmt.Errorf("player %d uses %s but BIDWHIST_ADVISOR_URL is not set", i+1, p.Kind)
			}
		default:
			return fmt.Errorf("player %d has unknown kind %q", i+1, p.Kind)
		}
	}
	if cfg.TargetScore <= 0 {
		return fmt.Errorf("target score must be positive, got %d", cfg.TargetScore)
	}
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", cfg.MaxAttempts)
	}
	if cfg.AllPass != "redeal" && cfg.AllPass != "first-seat" {
		return fmt.Errorf("all_pass must be redeal or first-seat, got %q", cfg.AllPass)
	}
	return nil
}

// Level slog 等級
func (cfg *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func (o OpenAI) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

func (r Remote) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
