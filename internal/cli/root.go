package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/deploycheck/internal/core/config"
	"github.com/vietddude/deploycheck/internal/core/domain"
	"github.com/vietddude/deploycheck/internal/core/manifest"
	"github.com/vietddude/deploycheck/internal/infra/probe"
	"github.com/vietddude/deploycheck/internal/validation"
)

var (
	cfgPath    string
	isDebug    bool
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "deploycheck",
	Short: "Deployment health validator",
	Long:  `Deploycheck probes every service in a deployment manifest, classifies health, computes the startup order and writes a readiness report.`,
	Run:   runValidate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "report output path (overrides config)")
}

// initLogging sets up the default slog logger.
func initLogging(debug bool) {
	slogLevel := slog.LevelInfo
	if debug {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})
}

// loadConfig loads the config file and initializes logging from it.
func loadConfig() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initLogging(isDebug || cfg.Logging.Level == "debug")

	return cfg
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	m, err := manifest.Load(cfg.Deployment)
	if err != nil {
		slog.Error("Invalid manifest", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	runner := validation.NewRunner(
		m,
		probe.NewDispatcher(cfg.Probe.Timeout),
		cfg.Probe.Concurrency,
	)

	report, err := runner.Run(ctx)
	if err != nil {
		slog.Error("Validation run failed", "error", err)
		os.Exit(1)
	}

	archive, err := openArchive(cfg)
	if err != nil {
		slog.Warn("Report archive unavailable", "backend", cfg.Archive.Backend, "error", err)
	} else if archive != nil {
		if err := archive.Save(ctx, uuid.NewString(), report); err != nil {
			slog.Warn("Failed to archive report", "error", err)
		}
		_ = archive.Close()
	}

	path := cfg.Report.Path
	if outputPath != "" {
		path = outputPath
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("Failed to encode report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		os.Exit(1)
	}

	slog.Info("Report written",
		"path", path,
		"overall_status", report.OverallStatus,
		"readiness_score", fmt.Sprintf("%.2f", report.ReadinessScore),
	)

	if report.OverallStatus == domain.OverallUnhealthy {
		os.Exit(2)
	}
}
