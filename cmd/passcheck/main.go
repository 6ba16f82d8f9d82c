package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"passcheck/internal/application"
	"passcheck/internal/config"
	"passcheck/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.New(os.Stderr, logx.Options{Level: slog.LevelInfo})
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	err = application.Run(ctx, cfg, application.IO{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logs:   os.Stderr,
		Colors: logx.IsTerminal(os.Stdout),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}
