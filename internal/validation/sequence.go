package validation

import (
	"errors"
	"fmt"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

// ErrCycle is returned when the dependency graph is not a DAG. Manifest
// loading already rejects cycles; this is an invariant re-check.
var ErrCycle = errors.New("dependency cycle")

// Sequence computes a deterministic startup order for the services: a
// topological sort of the dependency graph (edges point from a dependency to
// its dependents), with manifest declaration order as the tie-break so the
// result is stable across runs. Startup order reflects declared structure
// only, never current health.
func Sequence(services []domain.Service) ([]string, error) {
	indegree := make(map[string]int, len(services))
	dependents := make(map[string][]string, len(services))

	for _, svc := range services {
		for _, dep := range svc.DependsOn {
			indegree[svc.Name]++
			dependents[dep] = append(dependents[dep], svc.Name)
		}
	}

	order := make([]string, 0, len(services))
	placed := make(map[string]bool, len(services))

	// Kahn's algorithm. Instead of a queue, each step scans the manifest in
	// declaration order and takes the first unplaced service with no
	// remaining prerequisites, which makes the tie-break explicit.
	for len(order) < len(services) {
		progressed := false
		for _, svc := range services {
			if placed[svc.Name] || indegree[svc.Name] != 0 {
				continue
			}
			placed[svc.Name] = true
			order = append(order, svc.Name)
			for _, dependent := range dependents[svc.Name] {
				indegree[dependent]--
			}
			progressed = true
			break
		}
		if !progressed {
			return nil, fmt.Errorf("%w: %d services cannot be ordered", ErrCycle, len(services)-len(order))
		}
	}

	return order, nil
}
