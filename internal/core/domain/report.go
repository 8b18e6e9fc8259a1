// Package domain holds the value types shared across the validator:
// manifest services, probe outcomes, classifications and the report.
package domain

import "time"

// HealthState is the per-service classification verdict.
type HealthState string

const (
	StateHealthy   HealthState = "healthy"
	StateUnhealthy HealthState = "unhealthy"
)

// OverallStatus is the deployment-level verdict.
type OverallStatus string

const (
	OverallHealthy   OverallStatus = "healthy"
	OverallDegraded  OverallStatus = "degraded"
	OverallUnhealthy OverallStatus = "unhealthy"
)

// ProbeOutcome is the raw result of one health-check exchange, prior to
// interpretation. StatusCode is 0 when the transport call failed before a
// response was received; Err is set in exactly that case.
type ProbeOutcome struct {
	StatusCode int
	Body       string
	Err        error
}

// Failed reports whether the probe failed at the transport level.
func (o ProbeOutcome) Failed() bool {
	return o.Err != nil
}

// ServiceStatus is the interpreted health of one service.
type ServiceStatus struct {
	Status      HealthState `json:"status"`
	HTTPStatus  int         `json:"http_status,omitempty"`
	Criticality Criticality `json:"criticality"`
}

// DeploymentReport is the result of one validation run. It is built once by
// the report builder and never mutated afterward.
type DeploymentReport struct {
	DeploymentName          string                   `json:"deployment_name"`
	OverallStatus           OverallStatus            `json:"overall_status"`
	ReadinessScore          float64                  `json:"readiness_score"`
	ServiceStatuses         map[string]ServiceStatus `json:"service_statuses"`
	StartupOrder            []string                 `json:"startup_order"`
	CriticalServicesHealthy bool                     `json:"critical_services_healthy"`
	Timestamp               time.Time                `json:"timestamp"`
}
