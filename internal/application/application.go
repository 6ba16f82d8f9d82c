package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"passcheck/internal/config"
	"passcheck/internal/infrastructure/telemetry"
	"passcheck/internal/transport/console"
	"passcheck/pkg/application/modules"
	"passcheck/pkg/contextx"
	"passcheck/pkg/logx"
)

// IO потоки процесса, подменяются в тестах
type IO struct {
	In     io.Reader
	Out    io.Writer
	Logs   io.Writer
	Colors bool // Out is a terminal
}

// NewLogger логгер по конфигу. Логи идут отдельно от Out, чтобы не мешать диалогу.
func NewLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logx.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return logx.New(w, logx.Options{
		Level:   level,
		Format:  cfg.Log.Format,
		NoColor: cfg.App.ColorDisabled(),
	}).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	), nil
}

func Run(ctx context.Context, cfg config.Config, stdio IO) error {
	log, err := NewLogger(cfg, stdio.Logs)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)
	ctx = contextx.WithSessionID(ctx, contextx.NewSessionID())

	// 1. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := telemetry.NewEvaluationRecorder(registry)
	if err != nil {
		return fmt.Errorf("metrics recorder: %w", err)
	}

	// 2. Console
	renderer := console.NewRenderer(cfg.App.OutputFormat, stdio.Colors && !cfg.App.ColorDisabled())
	session := console.NewSession(stdio.In, stdio.Out, renderer, cfg.App.ExitKeyword).
		WithRecorder(recorder)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Metrics.Enabled() {
		modules.MetricServer{
			ListenAddress: cfg.Metrics.ListenAddress,
			Gatherer:      registry,
		}.Run(ctx, g)
	}

	g.Go(func() error {
		// session end stops everything else
		defer cancel()

		contextx.LoggerFromContextOrDefault(ctx).Info("session started",
			slog.String(logx.FieldOutputFormat, cfg.App.OutputFormat),
		)

		if err := session.Run(ctx); err != nil {
			return fmt.Errorf("session.Run: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}
