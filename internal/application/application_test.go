package application_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"passcheck/internal/application"
	"passcheck/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		App: config.App{
			Name:         "passcheck",
			Version:      "test",
			ExitKeyword:  "quit",
			OutputFormat: "text",
		},
		Log: config.Log{
			Level:  "debug",
			Format: "text",
		},
	}
}

func TestRun(t *testing.T) {
	rq := require.New(t)

	var out, logs bytes.Buffer

	err := application.Run(context.Background(), testConfig(), application.IO{
		In:   strings.NewReader("hunter2secret\nquit\n"),
		Out:  &out,
		Logs: &logs,
	})
	rq.NoError(err)

	rq.Contains(out.String(), "PASSWORD STRENGTH: MODERATE 🟡")
	rq.Contains(out.String(), "Stay secure!")
	rq.NotContains(out.String(), "\x1b[")

	rq.Contains(logs.String(), "session started")
	rq.Contains(logs.String(), "password evaluated")
	rq.Contains(logs.String(), "session-id=")
	rq.Contains(logs.String(), "app-version=test")
	rq.NotContains(logs.String(), "hunter2secret")
}

func TestRunJSON(t *testing.T) {
	rq := require.New(t)

	cfg := testConfig()
	cfg.App.OutputFormat = "json"
	cfg.Log.Format = "json"
	cfg.Log.Level = "error"

	var out, logs bytes.Buffer

	err := application.Run(context.Background(), cfg, application.IO{
		In:   strings.NewReader("abc\n"),
		Out:  &out,
		Logs: &logs,
	})
	rq.NoError(err)

	rq.Equal(1, strings.Count(out.String(), "\n"))
	rq.Contains(out.String(), `"strength":"VERY_WEAK"`)
	rq.Empty(logs.String())
}

func TestRunWithMetricsServer(t *testing.T) {
	rq := require.New(t)

	cfg := testConfig()
	cfg.Metrics.ListenAddress = "127.0.0.1:10030"

	var out, logs bytes.Buffer

	err := application.Run(context.Background(), cfg, application.IO{
		In:   strings.NewReader("quit\n"),
		Out:  &out,
		Logs: &logs,
	})
	rq.NoError(err)

	rq.Contains(logs.String(), "prometheus server stopped")
}

func TestRunBadLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "loud"

	err := application.Run(context.Background(), cfg, application.IO{
		In:   strings.NewReader(""),
		Out:  &bytes.Buffer{},
		Logs: &bytes.Buffer{},
	})
	require.ErrorContains(t, err, "logger:")
}

func TestRunColors(t *testing.T) {
	testCases := []struct {
		name    string
		noColor string
		colored bool
	}{
		{name: "Terminal without NO_COLOR", noColor: "", colored: true},
		{name: "NO_COLOR=yes", noColor: "yes", colored: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			cfg := testConfig()
			cfg.App.NoColor = tc.noColor

			var out bytes.Buffer

			err := application.Run(context.Background(), cfg, application.IO{
				In:     strings.NewReader("abc\nquit\n"),
				Out:    &out,
				Logs:   &bytes.Buffer{},
				Colors: true,
			})
			rq.NoError(err)

			rq.Equal(tc.colored, strings.Contains(out.String(), "\x1b[91mPASSWORD STRENGTH: VERY WEAK"))
		})
	}
}
