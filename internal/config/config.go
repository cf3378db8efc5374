// Package config provides the YAML-defined gameplay constants for the lawn.
// The values are embedded at build time; there is no runtime override.
package config

import "fmt"

// LawnConfig contains all configuration for a lawn session.
type LawnConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Mower   MowerConfig   `yaml:"mower"`
	Economy EconomyConfig `yaml:"economy"`
	Timing  TimingConfig  `yaml:"timing"`
	Session SessionConfig `yaml:"session"`
	Input   InputConfig   `yaml:"input"`
}

// GridConfig defines the lawn dimensions in tiles.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MowerConfig defines the mower's movement cadence.
type MowerConfig struct {
	MsPerMove int `yaml:"ms_per_move"` // Minimum milliseconds between moves
}

// EconomyConfig defines the flat payout.
type EconomyConfig struct {
	PayPerTile int `yaml:"pay_per_tile"` // Money credited on a tile's first visit
}

// TimingConfig defines timed transitions.
type TimingConfig struct {
	FadeOutMs int `yaml:"fade_out_ms"` // Won -> FadedOut delay
}

// SessionConfig defines what happens when play resumes after a fade-out.
type SessionConfig struct {
	CarryOverProgress bool `yaml:"carry_over_progress"`
}

// InputConfig defines how the terminal platform synthesizes key releases.
type InputConfig struct {
	HoldTimeoutMs int `yaml:"hold_timeout_ms"`
}

// Validate reports the first constant that cannot produce a playable lawn.
func (c LawnConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Mower.MsPerMove <= 0:
		return fmt.Errorf("config: mower.ms_per_move must be positive, got %d", c.Mower.MsPerMove)
	case c.Economy.PayPerTile < 0:
		return fmt.Errorf("config: economy.pay_per_tile must not be negative, got %d", c.Economy.PayPerTile)
	case c.Timing.FadeOutMs <= 0:
		return fmt.Errorf("config: timing.fade_out_ms must be positive, got %d", c.Timing.FadeOutMs)
	case c.Input.HoldTimeoutMs <= 0:
		return fmt.Errorf("config: input.hold_timeout_ms must be positive, got %d", c.Input.HoldTimeoutMs)
	}
	return nil
}
