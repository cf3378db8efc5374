// mower is a terminal lawn mowing game.
//
// Usage:
//
//	mower play      - Mow a lawn in this terminal
//	mower serve     - Start SSH server for remote play
//	mower scores    - Show the fastest recorded lawns
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--db <path>     - Record finished runs to a database (default: disabled)
//	--log <path>    - Write the game log to a file
//	--trace         - Export run traces over OTLP/HTTP
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rbrander/lawn-mower/internal/telemetry"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogPath string
	flagTrace   bool

	shutdownTelemetry func(context.Context) error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mower",
	Short: "Lawn Mower - mow a lawn in your terminal",
	Long: `Lawn Mower is a small terminal game: steer the mower over every
tile of the lawn. Each freshly cut tile pays $2, and once the whole lawn
is mowed you win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the fastest recorded lawns

Examples:
  mower play
  mower play --db ~/.lawn-mower/runs.db
  mower serve --ssh :2222
  mower scores --db ~/.lawn-mower/runs.db`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run log database (empty disables recording)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to the log file (play logs nowhere by default)")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "Export traces using the OTEL_EXPORTER_OTLP_* environment")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env and starts tracing when requested. Both are optional:
// failures are reported and the game runs without them.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	// Not fatal: the environment may be set directly.
	_ = godotenv.Load()

	if !flagTrace {
		return nil
	}

	shutdown, err := telemetry.Setup(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tracing disabled: %v\n", err)
		return nil
	}
	shutdownTelemetry = shutdown
	return nil
}

// tracing reports whether --trace was given and the exporter started.
func tracing() bool {
	return shutdownTelemetry != nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if shutdownTelemetry == nil {
		return nil
	}
	if err := shutdownTelemetry(context.WithoutCancel(cmd.Context())); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flushing traces failed: %v\n", err)
	}
	return nil
}
