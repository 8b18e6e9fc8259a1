// Package probe implements the health probers.
//
// This package contains:
//   - Prober interface: core abstraction for issuing one health probe
//   - HTTPProber: plain HTTP GET probes
//   - GRPCProber: gRPC health-checking protocol probes
//   - Dispatcher: routes a service to the right prober by endpoint shape
package probe

import (
	"context"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

// Prober issues exactly one outbound probe per call. Transport failures are
// reported inside the outcome, never as a Go error, so one unreachable
// service cannot abort a run.
type Prober interface {
	Probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome
}

// Dispatcher routes each service to the prober matching its endpoint shape.
type Dispatcher struct {
	http *HTTPProber
	grpc *GRPCProber
}

// NewDispatcher creates a dispatcher with the given per-probe timeout.
func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		http: NewHTTPProber(timeout),
		grpc: NewGRPCProber(timeout),
	}
}

// Probe dispatches on the service's endpoint shape.
func (d *Dispatcher) Probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome {
	switch svc.Shape {
	case domain.ShapeGRPCHealth:
		return d.grpc.Probe(ctx, svc)
	default:
		return d.http.Probe(ctx, svc)
	}
}
