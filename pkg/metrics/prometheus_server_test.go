package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"passcheck/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		body          string
	}{
		{
			name:          "Metrics handler",
			listenAddress: ":10010",
			endpoint:      "http://:10010/metrics",
			statusCode:    http.StatusOK,
			body:          "test_total 1",
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10020",
			endpoint:      "http://:10020/invalid",
			statusCode:    http.StatusNotFound,
			body:          "404 page not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			registry := prometheus.NewRegistry()

			counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "Test counter."})
			rq.NoError(registry.Register(counter))
			counter.Inc()

			prometheusServer := metrics.NewPrometheusServer(tc.listenAddress, registry)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return prometheusServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Contains(string(bodyBytes), tc.body)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}
