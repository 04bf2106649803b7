package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	utilog "github.com/moszorn/utils/log"

	"bidwhist"
	"bidwhist/config"
	"bidwhist/game"
)

var (
	configPath = flag.String("config", "", "JSON config file (optional)")
	envFile    = flag.String("env", ".env", "dotenv file (optional)")

	pid = strconv.Itoa(os.Getpid())
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		setupLog(slog.LevelWarn)
		slog.Error("config", utilog.Err(err))
		os.Exit(2)
	}
	setupLog(cfg.Level())

	session, err := bidwhist.InitProject(cfg, os.Stdin, os.Stdout)
	if err != nil {
		slog.Error("InitProject", utilog.Err(err))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := bidwhist.NewBarrier()
	go func() {
		_, err := session.Run(ctx)
		done.Done(err)
	}()
	go func() {
		<-ctx.Done()
		done.Done(ctx.Err())
	}()

	err = done.Wait()
	if cerr := session.Close(); cerr != nil {
		slog.Warn("Close", utilog.Err(cerr))
	}

	switch {
	case err == nil:
		slog.Info("Shut Down Bid Whist", slog.String("pid", pid), slog.String("game", session.ID))
	case errors.Is(err, game.ErrQuit):
		fmt.Println("Goodbye.")
	case errors.Is(err, context.Canceled):
		slog.Info("interrupted", slog.String("pid", pid))
		os.Exit(130)
	default:
		slog.Error("Session", utilog.Err(err), slog.Int("code", int(bidwhist.CodeOf(err))))
		os.Exit(1)
	}
}

func setupLog(level slog.Level) {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}
