package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived validation runs for the configured deployment",
	Run:   runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	archive, err := openArchive(cfg)
	if err != nil {
		slog.Error("Failed to open report archive", "backend", cfg.Archive.Backend, "error", err)
		os.Exit(1)
	}
	if archive == nil {
		slog.Error("Report archive is disabled", "backend", cfg.Archive.Backend)
		os.Exit(1)
	}
	defer func() {
		_ = archive.Close()
	}()

	ctx := context.Background()
	entries, err := archive.List(ctx, cfg.Deployment.Name, historyLimit)
	if err != nil {
		slog.Error("Failed to list archived runs", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "RUN\tSTATUS\tSCORE\tCRITICALS\tAT")

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%t\t%s\n",
			e.ID,
			e.Report.OverallStatus,
			e.Report.ReadinessScore,
			e.Report.CriticalServicesHealthy,
			e.CreatedAt.Format(time.RFC3339),
		)
	}
	_ = w.Flush()
}
