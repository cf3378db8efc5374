package lawn

import (
	"github.com/rbrander/lawn-mower/internal/config"
	"github.com/rbrander/lawn-mower/internal/core"
)

// Settings are the gameplay constants a session runs with.
type Settings struct {
	Width             int       // Lawn width in tiles
	Height            int       // Lawn height in tiles
	PayPerTile        int       // Money credited on a tile's first visit
	MsPerMove         core.Tick // Minimum ticks between mower moves
	FadeOut           core.Tick // Delay from winning to the fade-out completing
	CarryOverProgress bool      // Keep lawn and money when play restarts after a fade-out
}

// SettingsFrom converts a loaded config into session settings.
func SettingsFrom(cfg config.LawnConfig) Settings {
	return Settings{
		Width:             cfg.Grid.Width,
		Height:            cfg.Grid.Height,
		PayPerTile:        cfg.Economy.PayPerTile,
		MsPerMove:         core.Tick(cfg.Mower.MsPerMove),
		FadeOut:           core.Tick(cfg.Timing.FadeOutMs),
		CarryOverProgress: cfg.Session.CarryOverProgress,
	}
}

// DefaultSettings returns the settings built into the binary.
func DefaultSettings() Settings {
	return SettingsFrom(config.Load())
}
