package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

type Options struct {
	Level   slog.Level
	Format  string
	NoColor bool
}

// New builds a handler for w: tint for text, slog JSON otherwise.
// Colors are dropped when w is not a terminal.
func New(w io.Writer, opts Options) *slog.Logger {
	masker := NewSensitiveDataMasker()

	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       opts.Level,
			ReplaceAttr: masker.ReplaceAttr,
		}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       opts.Level,
		TimeFormat:  time.TimeOnly,
		NoColor:     opts.NoColor || !IsTerminal(w),
		ReplaceAttr: masker.ReplaceAttr,
	}))
}

func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level

	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return l, nil
}
