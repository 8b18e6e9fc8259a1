package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/validation/metrics"
)

// GRPCProber probes services speaking the gRPC health-checking protocol.
// The serving status is normalized into the common probe outcome: a
// successful RPC maps to status 200 with the serving status string as the
// body, so the classifier handles it like any other shape.
type GRPCProber struct {
	timeout time.Duration
}

// NewGRPCProber creates a new gRPC health prober.
func NewGRPCProber(timeout time.Duration) *GRPCProber {
	return &GRPCProber{timeout: timeout}
}

// Probe performs a single health Check RPC against svc.URL (host:port).
func (p *GRPCProber) Probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome {
	start := time.Now()
	outcome := p.probe(ctx, svc)
	metrics.ProbeDuration.WithLabelValues(svc.Name).Observe(time.Since(start).Seconds())

	result := "ok"
	if outcome.Failed() {
		result = "transport_error"
	}
	metrics.ProbesTotal.WithLabelValues(svc.Name, result).Inc()

	return outcome
}

func (p *GRPCProber) probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := grpc.NewClient(svc.URL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return domain.ProbeOutcome{Err: fmt.Errorf("grpc dial %s: %w", svc.Name, err)}
	}
	defer func() {
		_ = conn.Close()
	}()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return domain.ProbeOutcome{Err: fmt.Errorf("grpc health check %s: %w", svc.Name, err)}
	}

	return domain.ProbeOutcome{
		StatusCode: http.StatusOK,
		Body:       resp.GetStatus().String(),
	}
}
