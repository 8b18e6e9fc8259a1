package cli

import (
	"context"
	"fmt"

	"github.com/vietddude/deploycheck/internal/core/config"
	"github.com/vietddude/deploycheck/internal/infra/storage"
	"github.com/vietddude/deploycheck/internal/infra/storage/memory"
	"github.com/vietddude/deploycheck/internal/infra/storage/postgres"
	redisstore "github.com/vietddude/deploycheck/internal/infra/storage/redis"
)

// openArchive opens the configured report archive backend. A nil archive
// with nil error means archiving is disabled.
func openArchive(cfg *config.AppConfig) (storage.ReportArchive, error) {
	switch cfg.Archive.Backend {
	case "", "none":
		return nil, nil
	case "memory":
		return memory.NewArchive(), nil
	case "postgres":
		db, err := postgres.NewDB(context.Background(), cfg.Archive.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewReportRepo(db), nil
	case "redis":
		client, err := redisstore.NewClient(cfg.Archive.Redis)
		if err != nil {
			return nil, err
		}
		return redisstore.NewReportStore(client), nil
	}
	return nil, fmt.Errorf("unknown archive backend %q", cfg.Archive.Backend)
}
