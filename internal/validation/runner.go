package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/core/manifest"
	"github.com/vietddude/deploycheck/internal/validation/metrics"
)

// Prober issues one health probe per service. Transport failures are part of
// the outcome, not an error.
type Prober interface {
	Probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome
}

// Runner executes validation runs against a loaded manifest.
type Runner struct {
	manifest    *manifest.Manifest
	prober      Prober
	concurrency int
	log         *slog.Logger
}

// NewRunner creates a validation runner. concurrency bounds how many probes
// are in flight at once; values below 1 fall back to 1.
func NewRunner(m *manifest.Manifest, prober Prober, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		manifest:    m,
		prober:      prober,
		concurrency: concurrency,
		log:         slog.Default(),
	}
}

// Run performs one validation run: probe every service concurrently,
// classify each outcome, sequence the startup order, score readiness and
// assemble the report. A cancelled context aborts the run with an error;
// no partial report is ever returned.
func (r *Runner) Run(ctx context.Context) (*domain.DeploymentReport, error) {
	runID := uuid.NewString()
	services := r.manifest.Services
	start := time.Now()

	r.log.Info("Validation run started",
		"run_id", runID,
		"deployment", r.manifest.Deployment,
		"services", len(services),
	)

	// Startup order only depends on declared structure, compute it up front
	// so a cycle fails the run before any probing result matters.
	order, err := Sequence(services)
	if err != nil {
		return nil, fmt.Errorf("sequence services: %w", err)
	}

	// One slot per service; probes never share state.
	outcomes := make([]domain.ProbeOutcome, len(services))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, svc := range services {
		i, svc := i, svc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.prober.Probe(gctx, svc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation run aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("validation run aborted: %w", err)
	}

	statuses := make(map[string]domain.ServiceStatus, len(services))
	unhealthy := 0
	for i, svc := range services {
		status := Classify(svc, outcomes[i])
		statuses[svc.Name] = status
		if status.Status != domain.StateHealthy {
			unhealthy++
			r.log.Warn("Service unhealthy",
				"run_id", runID,
				"service", svc.Name,
				"criticality", svc.Criticality,
				"http_status", status.HTTPStatus,
				"error", outcomes[i].Err,
			)
		}
	}

	card := Score(services, statuses)

	metrics.ReadinessScore.WithLabelValues(r.manifest.Deployment).Set(card.ReadinessScore)
	metrics.ServicesUnhealthy.WithLabelValues(r.manifest.Deployment).Set(float64(unhealthy))

	report := buildReport(r.manifest.Deployment, statuses, order, card, time.Now().UTC())

	r.log.Info("Validation run finished",
		"run_id", runID,
		"overall_status", report.OverallStatus,
		"readiness_score", report.ReadinessScore,
		"unhealthy", unhealthy,
		"elapsed", time.Since(start),
	)

	return report, nil
}
