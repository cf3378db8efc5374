package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rbrander/lawn-mower/internal/config"
	"github.com/rbrander/lawn-mower/internal/core"
	"github.com/rbrander/lawn-mower/internal/lawn"
	"github.com/rbrander/lawn-mower/internal/platform/tui"
	"github.com/rbrander/lawn-mower/internal/storage"
	"github.com/rbrander/lawn-mower/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Mow a lawn in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Steer the mower
  Any key      - Start from the title screen
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

The mower keeps its heading when no direction is held. Terminals only
report key presses, so a direction counts as held while it repeats.

Examples:
  mower play
  mower play --fps 30
  mower play --db ~/.lawn-mower/runs.db --log mower.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	lawnCfg := config.Load()

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run log", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	player := os.Getenv("USER")
	tracer := telemetry.NoopTracer()
	if tracing() {
		tracer = telemetry.Tracer("play")
	}
	runs := telemetry.NewRunTracer(context.WithoutCancel(cmd.Context()), tracer, player)
	defer runs.End()

	logger.Info("session started", "player", player, "grid", fmt.Sprintf("%dx%d", lawnCfg.Grid.Width, lawnCfg.Grid.Height))
	defer logger.Info("session ended", "player", player)

	return tui.Run(tui.Options{
		Settings:    lawn.SettingsFrom(lawnCfg),
		HoldTimeout: core.Tick(lawnCfg.Input.HoldTimeoutMs),
		Observers: []lawn.Observer{
			tui.NewRunRecorder(store, logger, player),
			runs,
		},
	}, cfg)
}

// openLogger returns a logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the game while it runs.
func openLogger(path string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mower",
	})
	return logger, closeFn, nil
}
