package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stack runs the mock deployment as real HTTP servers.
type Stack struct {
	servers []*http.Server
}

// NewStack creates servers for the given endpoints plus a metrics server on
// metricsPort exposing /metrics.
func NewStack(endpoints []Endpoint, metricsPort int) *Stack {
	s := &Stack{}

	for _, ep := range endpoints {
		s.servers = append(s.servers, &http.Server{
			Addr:    fmt.Sprintf(":%d", ep.Port),
			Handler: ep.Handler,
		})
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	s.servers = append(s.servers, &http.Server{
		Addr:    fmt.Sprintf(":%d", metricsPort),
		Handler: metricsMux,
	})

	return s
}

// Start starts all servers. Each server failure is logged, not fatal, so a
// port collision on one mock doesn't take the rest down.
func (s *Stack) Start() {
	for _, srv := range s.servers {
		srv := srv
		go func() {
			slog.Info("Mock server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Mock server failed", "addr", srv.Addr, "error", err)
			}
		}()
	}
}

// Stop shuts all servers down.
func (s *Stack) Stop(ctx context.Context) error {
	var firstErr error
	for _, srv := range s.servers {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
			firstErr = err
		}
		cancel()
	}
	return firstErr
}
