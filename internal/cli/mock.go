package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/deploycheck/internal/fixture"
)

var mockMetricsPort int

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run the mock deployment services on ports 8081-8085",
	Run:   runMock,
}

func init() {
	mockCmd.Flags().IntVar(&mockMetricsPort, "metrics-port", 9090, "port for the /metrics endpoint")
	rootCmd.AddCommand(mockCmd)
}

func runMock(cmd *cobra.Command, args []string) {
	initLogging(isDebug)

	stack := fixture.NewStack(fixture.Endpoints(), mockMetricsPort)
	stack.Start()

	slog.Info("All mock services running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Received signal, shutting down...", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := stack.Stop(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		os.Exit(1)
	}
}
