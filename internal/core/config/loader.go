package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if necessary
	if cfg.Probe.Timeout == 0 {
		cfg.Probe.Timeout = 5 * time.Second
	}
	if cfg.Probe.Concurrency == 0 {
		cfg.Probe.Concurrency = 8
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "deployment_report.json"
	}
	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = "none"
	}

	return &cfg, nil
}
