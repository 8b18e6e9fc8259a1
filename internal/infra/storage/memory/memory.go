// Package memory provides an in-process report archive.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/infra/storage"
)

// Archive stores reports in memory. Safe for concurrent use.
type Archive struct {
	mu      sync.RWMutex
	entries []storage.ArchivedReport
}

// NewArchive creates an empty in-memory archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Save stores a copy of the report.
func (a *Archive) Save(ctx context.Context, id string, report *domain.DeploymentReport) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append(a.entries, storage.ArchivedReport{
		ID:        id,
		Report:    *report,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// List returns the newest runs first.
func (a *Archive) List(ctx context.Context, deployment string, limit int) ([]storage.ArchivedReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []storage.ArchivedReport
	for i := len(a.entries) - 1; i >= 0; i-- {
		if a.entries[i].Report.DeploymentName != deployment {
			continue
		}
		out = append(out, a.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Close is a no-op.
func (a *Archive) Close() error {
	return nil
}
