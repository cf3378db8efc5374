package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbrander/lawn-mower/internal/config"
	"github.com/rbrander/lawn-mower/internal/core"
	"github.com/rbrander/lawn-mower/internal/lawn"
	"github.com/rbrander/lawn-mower/internal/platform/tui"
	"github.com/rbrander/lawn-mower/internal/telemetry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lawn mower SSH server",
	Long: `Start an SSH server that lets users connect and mow.

Each SSH connection gets its own lawn; players never share a session.
With --db, finished runs from every player go to the same run log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lawn-mower/host_key

Examples:
  mower serve                           # Listen on :23235 with auto-generated key
  mower serve --ssh :2222               # Listen on port 2222
  mower serve --host-key ./my_host_key  # Use specific host key
  mower serve --db ./runs.db            # Record finished runs

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	lawnCfg := config.Load()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Settings = lawn.SettingsFrom(lawnCfg)
	cfg.HoldTimeout = core.Tick(lawnCfg.Input.HoldTimeoutMs)
	if tracing() {
		cfg.Tracer = telemetry.Tracer("ssh")
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting lawn mower SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
