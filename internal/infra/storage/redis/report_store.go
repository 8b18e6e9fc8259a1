package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/infra/storage"
)

// retention bounds how long archived reports stay around.
const retention = 7 * 24 * time.Hour

// ReportStore implements storage.ReportArchive using Redis. Reports are
// stored as JSON values keyed by run ID, with a per-deployment sorted set
// (score = report timestamp) as the index.
type ReportStore struct {
	rdb *redis.Client
}

// NewReportStore creates a new Redis-backed report archive.
func NewReportStore(client *Client) *ReportStore {
	return &ReportStore{rdb: client.rdb}
}

// Key helpers
func indexKey(deployment string) string {
	return fmt.Sprintf("reports:%s", deployment)
}

func reportKey(id string) string {
	return fmt.Sprintf("report:%s", id)
}

// Save stores a report and adds it to the deployment's index.
func (s *ReportStore) Save(ctx context.Context, id string, report *domain.DeploymentReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := s.rdb.Set(ctx, reportKey(id), data, retention).Err(); err != nil {
		return fmt.Errorf("failed to set report: %w", err)
	}

	if err := s.rdb.ZAdd(ctx, indexKey(report.DeploymentName), redis.Z{
		Score:  float64(report.Timestamp.Unix()),
		Member: id,
	}).Err(); err != nil {
		return fmt.Errorf("failed to index report: %w", err)
	}

	return nil
}

// List returns the most recent runs for a deployment, newest first.
func (s *ReportStore) List(ctx context.Context, deployment string, limit int) ([]storage.ArchivedReport, error) {
	if limit <= 0 {
		limit = 20
	}

	ids, err := s.rdb.ZRevRange(ctx, indexKey(deployment), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange failed: %w", err)
	}

	var out []storage.ArchivedReport
	for _, id := range ids {
		data, err := s.rdb.Get(ctx, reportKey(id)).Bytes()
		if err == redis.Nil {
			// Value expired but ID still indexed, drop it
			s.rdb.ZRem(ctx, indexKey(deployment), id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get report %s: %w", id, err)
		}

		var report domain.DeploymentReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
		}

		out = append(out, storage.ArchivedReport{
			ID:        id,
			Report:    report,
			CreatedAt: report.Timestamp,
		})
	}
	return out, nil
}

// Close closes the Redis connection.
func (s *ReportStore) Close() error {
	return s.rdb.Close()
}
