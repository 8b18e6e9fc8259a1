package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProbesTotal tracks probes per service and result
	ProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploycheck_probes_total",
			Help: "Total number of health probes",
		},
		[]string{"service", "result"},
	)

	// ProbeDuration tracks probe latency per service
	ProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deploycheck_probe_duration_seconds",
			Help:    "Health probe latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// ReadinessScore tracks the last computed readiness score per deployment
	ReadinessScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "deploycheck_readiness_score",
			Help: "Weighted readiness score of the last validation run",
		},
		[]string{"deployment"},
	)

	// ServicesUnhealthy tracks the unhealthy service count per deployment
	ServicesUnhealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "deploycheck_services_unhealthy",
			Help: "Number of services classified unhealthy in the last run",
		},
		[]string{"deployment"},
	)
)
