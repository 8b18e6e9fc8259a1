package validation

import (
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

// buildReport assembles the final report. Pure field assembly; all decision
// logic happened upstream in the classifier, sequencer and scorer.
func buildReport(
	deployment string,
	statuses map[string]domain.ServiceStatus,
	order []string,
	card Scorecard,
	at time.Time,
) *domain.DeploymentReport {
	return &domain.DeploymentReport{
		DeploymentName:          deployment,
		OverallStatus:           card.OverallStatus,
		ReadinessScore:          card.ReadinessScore,
		ServiceStatuses:         statuses,
		StartupOrder:            order,
		CriticalServicesHealthy: card.CriticalServicesHealthy,
		Timestamp:               at,
	}
}
