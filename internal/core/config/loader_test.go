package config

import (
	"os"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	return tmpFile.Name()
}

func TestLoad_EnvSubstitution(t *testing.T) {
	os.Setenv("TEST_AUTH_URL", "http://auth.internal:8081/health")
	defer os.Unsetenv("TEST_AUTH_URL")

	configContent := `
deployment:
  name: test-stack
  services:
    - name: auth-service
      url: ${TEST_AUTH_URL}
      shape: json-status
      criticality: high
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Deployment.Services[0].URL != "http://auth.internal:8081/health" {
		t.Errorf("Expected URL http://auth.internal:8081/health, got %s", cfg.Deployment.Services[0].URL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	configContent := `
deployment:
  name: test-stack
  services:
    - name: auth-service
      url: http://localhost:8081/health
      criticality: high
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Probe.Timeout != 5*time.Second {
		t.Errorf("Expected default timeout 5s, got %v", cfg.Probe.Timeout)
	}
	if cfg.Probe.Concurrency != 8 {
		t.Errorf("Expected default concurrency 8, got %d", cfg.Probe.Concurrency)
	}
	if cfg.Report.Path != "deployment_report.json" {
		t.Errorf("Expected default report path, got %s", cfg.Report.Path)
	}
	if cfg.Archive.Backend != "none" {
		t.Errorf("Expected default archive backend none, got %s", cfg.Archive.Backend)
	}
}

func TestLoad_ProbeSettings(t *testing.T) {
	configContent := `
deployment:
  name: test-stack
  services:
    - name: auth-service
      url: http://localhost:8081/health
      criticality: high
probe:
  timeout: 2s
  concurrency: 3
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Probe.Timeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %v", cfg.Probe.Timeout)
	}
	if cfg.Probe.Concurrency != 3 {
		t.Errorf("Expected concurrency 3, got %d", cfg.Probe.Concurrency)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeTempConfig(t, "deployment: [unclosed")); err == nil {
		t.Fatal("Expected error for malformed YAML, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}
