// Package validation implements the core validation engine: classification,
// startup sequencing, readiness scoring and report assembly.
package validation

import (
	"encoding/json"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

// Classify interprets a probe outcome according to the service's endpoint
// shape. It is pure and total: any outcome, including a malformed body,
// yields a classification rather than an error.
//
// HTTP-level success is necessary but not sufficient: a service can answer
// 200 while self-reporting degraded capacity, and that classifies unhealthy.
func Classify(svc domain.Service, outcome domain.ProbeOutcome) domain.ServiceStatus {
	status := domain.ServiceStatus{
		Status:      domain.StateUnhealthy,
		HTTPStatus:  outcome.StatusCode,
		Criticality: svc.Criticality,
	}

	if outcome.Failed() {
		return status
	}
	if outcome.StatusCode < 200 || outcome.StatusCode > 299 {
		return status
	}

	if bodyHealthy(svc.Shape, outcome.Body) {
		status.Status = domain.StateHealthy
	}
	return status
}

func bodyHealthy(shape domain.EndpointShape, body string) bool {
	switch shape {
	case domain.ShapeJSONStatus:
		var payload struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			return false
		}
		return payload.Status == "ok" || payload.Status == "healthy"

	case domain.ShapePlainText:
		return body != ""

	case domain.ShapeGRPCHealth:
		return body == "SERVING"
	}
	return false
}
