package contextx

import (
	"context"
	"fmt"
	"log/slog"

	"passcheck/pkg/logx"
)

type contextKeyLogger struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

func LoggerFromContext(ctx context.Context) (*slog.Logger, error) {
	logger, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger)
	if !ok {
		return nil, fmt.Errorf("logger: %w", ErrNoValue)
	}

	return logger, nil
}

// LoggerFromContextOrDefault falls back to slog.Default, enriched with the
// session id when one is present.
func LoggerFromContextOrDefault(ctx context.Context) *slog.Logger {
	logger, err := LoggerFromContext(ctx)
	if err != nil {
		logger = slog.Default()
	}

	if sessionID, err := SessionIDFromContext(ctx); err == nil {
		logger = logger.With(slog.String(logx.FieldSessionID, sessionID.String()))
	}

	return logger
}
