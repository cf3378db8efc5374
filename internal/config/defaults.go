package config

import (
	_ "embed"
)

//go:embed defaults/lawn.yaml
var defaultLawnYAML []byte

// DefaultLawnConfig returns the hardcoded lawn configuration.
// It mirrors defaults/lawn.yaml and is used if the embedded file is unusable.
func DefaultLawnConfig() LawnConfig {
	return LawnConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 7,
		},
		Mower: MowerConfig{
			MsPerMove: 300,
		},
		Economy: EconomyConfig{
			PayPerTile: 2,
		},
		Timing: TimingConfig{
			FadeOutMs: 2000,
		},
		Session: SessionConfig{
			CarryOverProgress: false,
		},
		Input: InputConfig{
			HoldTimeoutMs: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLawnYAML
}
