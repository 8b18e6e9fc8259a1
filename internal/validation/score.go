package validation

import "github.com/vietddude/deploycheck/internal/core/domain"

// healthyThreshold is the readiness score at or above which a deployment
// with a clean critical path is considered fully healthy.
const healthyThreshold = 0.95

// Scorecard aggregates the outcome-driven half of the report.
type Scorecard struct {
	ReadinessScore          float64
	CriticalServicesHealthy bool
	OverallStatus           domain.OverallStatus
}

// Score computes the weighted readiness score, the critical-path gate and
// the overall verdict from the per-service classifications.
//
// The score is a capacity signal layered on top of the critical-path gate:
// a deployment can be safe on its critical path and still come out degraded
// because lower-tier failures drag the aggregate down.
func Score(services []domain.Service, statuses map[string]domain.ServiceStatus) Scorecard {
	var healthyWeight, totalWeight int
	criticalHealthy := true

	for _, svc := range services {
		weight := svc.Criticality.Weight()
		totalWeight += weight

		status, ok := statuses[svc.Name]
		healthy := ok && status.Status == domain.StateHealthy
		if healthy {
			healthyWeight += weight
		}
		if svc.Criticality == domain.CriticalityHigh && !healthy {
			criticalHealthy = false
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = float64(healthyWeight) / float64(totalWeight)
	}

	overall := domain.OverallDegraded
	switch {
	case !criticalHealthy:
		overall = domain.OverallUnhealthy
	case score >= healthyThreshold:
		overall = domain.OverallHealthy
	}

	return Scorecard{
		ReadinessScore:          score,
		CriticalServicesHealthy: criticalHealthy,
		OverallStatus:           overall,
	}
}
