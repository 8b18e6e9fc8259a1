package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/infra/storage"
)

// ReportRepo implements storage.ReportArchive on PostgreSQL.
type ReportRepo struct {
	db *DB
}

// NewReportRepo creates a new PostgreSQL-backed report archive.
func NewReportRepo(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Save stores a report row with the full report as JSONB payload.
func (r *ReportRepo) Save(ctx context.Context, id string, report *domain.DeploymentReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO reports (id, deployment_name, overall_status, readiness_score, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, report.DeploymentName, string(report.OverallStatus),
		report.ReadinessScore, payload, report.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// List returns the most recent runs for a deployment, newest first.
func (r *ReportRepo) List(ctx context.Context, deployment string, limit int) ([]storage.ArchivedReport, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payload, created_at FROM reports
		 WHERE deployment_name = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		deployment, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []storage.ArchivedReport
	for rows.Next() {
		var (
			id        string
			payload   []byte
			createdAt time.Time
		)
		if err := rows.Scan(&id, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		var report domain.DeploymentReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
		}

		out = append(out, storage.ArchivedReport{
			ID:        id,
			Report:    report,
			CreatedAt: createdAt,
		})
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (r *ReportRepo) Close() error {
	return r.db.Close()
}
