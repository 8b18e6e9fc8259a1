package config

import (
	"time"

	"github.com/vietddude/deploycheck/internal/infra/storage/postgres"
	redisstore "github.com/vietddude/deploycheck/internal/infra/storage/redis"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Deployment DeploymentConfig `yaml:"deployment"`
	Probe      ProbeConfig      `yaml:"probe"`
	Report     ReportConfig     `yaml:"report"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DeploymentConfig is the service manifest: the deployment name plus one
// entry per service. Declaration order is significant, it is the tie-break
// for the startup order.
type DeploymentConfig struct {
	Name     string          `yaml:"name"`
	Services []ServiceConfig `yaml:"services"`
}

// ServiceConfig holds one manifest entry.
type ServiceConfig struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Shape       string   `yaml:"shape"`       // json-status, plain-text, grpc-health
	Criticality string   `yaml:"criticality"` // high, medium, low
	DependsOn   []string `yaml:"depends_on"`
}

// ProbeConfig holds probe dispatch settings.
type ProbeConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// ArchiveConfig selects the optional report archive backend.
type ArchiveConfig struct {
	Backend  string            `yaml:"backend"` // none, memory, postgres, redis
	Postgres postgres.Config   `yaml:"postgres"`
	Redis    redisstore.Config `yaml:"redis"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
