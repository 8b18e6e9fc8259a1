// Package manifest validates the static service manifest and turns the raw
// configuration into read-only domain services.
package manifest

import (
	"errors"
	"fmt"

	"github.com/vietddude/deploycheck/internal/core/config"
	"github.com/vietddude/deploycheck/internal/core/domain"
)

// Manifest errors. All of them are configuration errors and fatal before
// any probing starts.
var (
	ErrDuplicateService  = errors.New("duplicate service name")
	ErrUnknownDependency = errors.New("unknown dependency")
	ErrInvalidService    = errors.New("invalid service")
	ErrCycle             = errors.New("dependency cycle")
)

// Manifest is the validated, ordered list of deployment services. Order is
// declaration order and is the tie-break for the startup sequence.
type Manifest struct {
	Deployment string
	Services   []domain.Service

	byName map[string]int
}

// Load validates the deployment configuration and builds the manifest.
func Load(cfg config.DeploymentConfig) (*Manifest, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: deployment name is empty", ErrInvalidService)
	}
	if len(cfg.Services) == 0 {
		return nil, fmt.Errorf("%w: no services declared", ErrInvalidService)
	}

	m := &Manifest{
		Deployment: cfg.Name,
		Services:   make([]domain.Service, 0, len(cfg.Services)),
		byName:     make(map[string]int, len(cfg.Services)),
	}

	for i, sc := range cfg.Services {
		if sc.Name == "" {
			return nil, fmt.Errorf("%w: service %d has no name", ErrInvalidService, i)
		}
		if _, ok := m.byName[sc.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateService, sc.Name)
		}
		if sc.URL == "" {
			return nil, fmt.Errorf("%w: %q has no url", ErrInvalidService, sc.Name)
		}

		shape := domain.EndpointShape(sc.Shape)
		if shape == "" {
			shape = domain.ShapeJSONStatus
		}
		if !shape.Valid() {
			return nil, fmt.Errorf("%w: %q has unknown shape %q", ErrInvalidService, sc.Name, sc.Shape)
		}

		crit := domain.Criticality(sc.Criticality)
		if !crit.Valid() {
			return nil, fmt.Errorf("%w: %q has unknown criticality %q", ErrInvalidService, sc.Name, sc.Criticality)
		}

		m.byName[sc.Name] = i
		m.Services = append(m.Services, domain.Service{
			Name:        sc.Name,
			URL:         sc.URL,
			Shape:       shape,
			Criticality: crit,
			DependsOn:   append([]string(nil), sc.DependsOn...),
		})
	}

	for _, svc := range m.Services {
		for _, dep := range svc.DependsOn {
			if _, ok := m.byName[dep]; !ok {
				return nil, fmt.Errorf("%w: %q depends on %q", ErrUnknownDependency, svc.Name, dep)
			}
			if dep == svc.Name {
				return nil, fmt.Errorf("%w: %q depends on itself", ErrCycle, svc.Name)
			}
		}
	}

	if err := checkAcyclic(m.Services); err != nil {
		return nil, err
	}

	return m, nil
}

// Service looks up a service by name.
func (m *Manifest) Service(name string) (domain.Service, bool) {
	i, ok := m.byName[name]
	if !ok {
		return domain.Service{}, false
	}
	return m.Services[i], true
}

// checkAcyclic rejects manifests whose dependency graph is not a DAG.
func checkAcyclic(services []domain.Service) error {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // done
	)

	deps := make(map[string][]string, len(services))
	for _, svc := range services {
		deps[svc.Name] = svc.DependsOn
	}

	color := make(map[string]int, len(services))

	var visit func(name string) error
	visit = func(name string) error {
		switch color[name] {
		case gray:
			return fmt.Errorf("%w: involving %q", ErrCycle, name)
		case black:
			return nil
		}
		color[name] = gray
		for _, dep := range deps[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[name] = black
		return nil
	}

	for _, svc := range services {
		if err := visit(svc.Name); err != nil {
			return err
		}
	}
	return nil
}
