package validation

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

func statusesFor(services []domain.Service, healthy map[string]bool) map[string]domain.ServiceStatus {
	out := make(map[string]domain.ServiceStatus, len(services))
	for _, s := range services {
		state := domain.StateUnhealthy
		if healthy[s.Name] {
			state = domain.StateHealthy
		}
		out[s.Name] = domain.ServiceStatus{
			Status:      state,
			HTTPStatus:  200,
			Criticality: s.Criticality,
		}
	}
	return out
}

func tiered(name string, crit domain.Criticality) domain.Service {
	return domain.Service{Name: name, URL: "http://localhost/health", Shape: domain.ShapeJSONStatus, Criticality: crit}
}

func TestScore_FiveServiceScenario(t *testing.T) {
	// healthy: auth(3) + gateway(3) + cache(2) + notification(1) = 9 of 10
	services := []domain.Service{
		tiered("auth-service", domain.CriticalityHigh),
		tiered("api-gateway", domain.CriticalityHigh),
		tiered("cache-service", domain.CriticalityMedium),
		tiered("worker-service", domain.CriticalityLow),
		tiered("notification-service", domain.CriticalityLow),
	}
	statuses := statusesFor(services, map[string]bool{
		"auth-service":         true,
		"api-gateway":          true,
		"cache-service":        true,
		"worker-service":       false,
		"notification-service": true,
	})

	card := Score(services, statuses)

	if math.Abs(card.ReadinessScore-0.9) > 0.001 {
		t.Errorf("Expected readiness score 0.9, got %v", card.ReadinessScore)
	}
	if !card.CriticalServicesHealthy {
		t.Error("Expected critical services healthy: only a low-tier service failed")
	}
	if card.OverallStatus != domain.OverallDegraded {
		t.Errorf("Expected degraded, got %s", card.OverallStatus)
	}
}

func TestScore_AllHealthy(t *testing.T) {
	services := []domain.Service{
		tiered("auth", domain.CriticalityHigh),
		tiered("cache", domain.CriticalityMedium),
		tiered("worker", domain.CriticalityLow),
	}
	statuses := statusesFor(services, map[string]bool{"auth": true, "cache": true, "worker": true})

	card := Score(services, statuses)

	if card.ReadinessScore != 1.0 {
		t.Errorf("Expected score 1.0, got %v", card.ReadinessScore)
	}
	if !card.CriticalServicesHealthy {
		t.Error("Expected critical services healthy")
	}
	if card.OverallStatus != domain.OverallHealthy {
		t.Errorf("Expected healthy, got %s", card.OverallStatus)
	}
}

func TestScore_CriticalFailureOverridesScore(t *testing.T) {
	// One high-tier failure among many healthy services: the score stays
	// high but the verdict must be unhealthy.
	services := []domain.Service{tiered("auth", domain.CriticalityHigh)}
	healthy := map[string]bool{"auth": false}
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("svc-%d", i)
		services = append(services, tiered(name, domain.CriticalityLow))
		healthy[name] = true
	}

	card := Score(services, statusesFor(services, healthy))

	if card.ReadinessScore < 0.85 {
		t.Fatalf("Scenario broken: expected a high score, got %v", card.ReadinessScore)
	}
	if card.CriticalServicesHealthy {
		t.Error("Expected critical services unhealthy")
	}
	if card.OverallStatus != domain.OverallUnhealthy {
		t.Errorf("Expected unhealthy regardless of score, got %s", card.OverallStatus)
	}
}

func TestScore_ThresholdBoundary(t *testing.T) {
	// 19 of 20 equal-weight services healthy = 0.95 exactly, which counts
	// as healthy (threshold is inclusive).
	var services []domain.Service
	healthy := make(map[string]bool)
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("svc-%d", i)
		services = append(services, tiered(name, domain.CriticalityLow))
		healthy[name] = i != 0
	}

	card := Score(services, statusesFor(services, healthy))

	if math.Abs(card.ReadinessScore-0.95) > 1e-9 {
		t.Fatalf("Expected score 0.95, got %v", card.ReadinessScore)
	}
	if card.OverallStatus != domain.OverallHealthy {
		t.Errorf("Expected healthy at the 0.95 boundary, got %s", card.OverallStatus)
	}
}

func TestScore_MediumLowDoNotGateCriticals(t *testing.T) {
	services := []domain.Service{
		tiered("auth", domain.CriticalityHigh),
		tiered("cache", domain.CriticalityMedium),
		tiered("worker", domain.CriticalityLow),
	}
	statuses := statusesFor(services, map[string]bool{"auth": true})

	card := Score(services, statuses)

	if !card.CriticalServicesHealthy {
		t.Error("Only high-tier services may gate critical_services_healthy")
	}
	if card.OverallStatus != domain.OverallDegraded {
		t.Errorf("Expected degraded, got %s", card.OverallStatus)
	}
}

func TestScore_MissingStatusCountsUnhealthy(t *testing.T) {
	services := []domain.Service{
		tiered("auth", domain.CriticalityHigh),
		tiered("cache", domain.CriticalityMedium),
	}
	statuses := statusesFor(services[:1], map[string]bool{"auth": true})

	card := Score(services, statuses)

	if math.Abs(card.ReadinessScore-3.0/5.0) > 1e-9 {
		t.Errorf("Expected score 0.6, got %v", card.ReadinessScore)
	}
}

func TestScore_WeightedRatioProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tiers := []domain.Criticality{domain.CriticalityHigh, domain.CriticalityMedium, domain.CriticalityLow}

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(12)
		var services []domain.Service
		healthy := make(map[string]bool)
		healthyWeight, totalWeight := 0, 0

		for i := 0; i < n; i++ {
			name := fmt.Sprintf("svc-%d", i)
			crit := tiers[rng.Intn(len(tiers))]
			services = append(services, tiered(name, crit))
			totalWeight += crit.Weight()
			if rng.Intn(2) == 0 {
				healthy[name] = true
				healthyWeight += crit.Weight()
			}
		}

		card := Score(services, statusesFor(services, healthy))

		want := float64(healthyWeight) / float64(totalWeight)
		if math.Abs(card.ReadinessScore-want) > 1e-9 {
			t.Fatalf("Trial %d: expected score %v, got %v", trial, want, card.ReadinessScore)
		}
		if card.ReadinessScore < 0 || card.ReadinessScore > 1 {
			t.Fatalf("Trial %d: score out of range: %v", trial, card.ReadinessScore)
		}
	}
}
