// Package storage defines the report archive abstraction. Backends live in
// the memory, postgres and redis subpackages.
package storage

import (
	"context"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
)

// ArchivedReport is one persisted validation run.
type ArchivedReport struct {
	ID        string
	Report    domain.DeploymentReport
	CreatedAt time.Time
}

// ReportArchive persists validation reports for later inspection. Saving is
// best-effort plumbing around a run; a failed save never fails the run itself.
type ReportArchive interface {
	// Save stores a report under the given run ID.
	Save(ctx context.Context, id string, report *domain.DeploymentReport) error

	// List returns the most recent runs for a deployment, newest first.
	List(ctx context.Context, deployment string, limit int) ([]ArchivedReport, error)

	// Close releases backend resources.
	Close() error
}
