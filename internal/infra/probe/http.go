package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/validation/metrics"
)

// HTTPProber probes services over plain HTTP.
type HTTPProber struct {
	timeout    time.Duration
	httpClient *http.Client
}

// NewHTTPProber creates a new HTTP prober with a bounded per-probe timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Probe issues a single GET against the service endpoint and captures the
// status code plus the verbatim body. No retries.
func (p *HTTPProber) Probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome {
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

func (p *HTTPProber) probe(ctx context.Context, svc domain.Service) domain.ProbeOutcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.URL, nil)
	if err != nil {
		return domain.ProbeOutcome{Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.ProbeOutcome{Err: fmt.Errorf("probe %s: %w", svc.Name, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ProbeOutcome{Err: fmt.Errorf("read response: %w", err)}
	}

	return domain.ProbeOutcome{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
