package tui

import (
	"github.com/charmbracelet/log"

	"github.com/rbrander/lawn-mower/internal/core"
	"github.com/rbrander/lawn-mower/internal/lawn"
	"github.com/rbrander/lawn-mower/internal/storage"
)

// RunRecorder logs session transitions and saves every finished lawn to
// the run log. A nil store only logs.
type RunRecorder struct {
	store     *storage.Store
	logger    *log.Logger
	player    string
	startedAt core.Tick
	startedOn int // Tiles already mowed when the run started
}

// NewRunRecorder creates a recorder for one player's session.
func NewRunRecorder(store *storage.Store, logger *log.Logger, player string) *RunRecorder {
	return &RunRecorder{
		store:  store,
		logger: logger,
		player: player,
	}
}

// OnTransition implements lawn.Observer.
func (r *RunRecorder) OnTransition(from, to lawn.State, snap lawn.Snapshot) {
	r.logger.Debug("transition", "player", r.player, "from", from, "to", to, "tick", snap.Tick)

	switch to.Phase {
	case lawn.PhaseActive:
		r.startedAt = snap.Tick
		r.startedOn = snap.Visited
		r.logger.Info("run started", "player", r.player, "mowed", snap.Visited, "tiles", snap.Tiles)

	case lawn.PhaseWon:
		// A run resumed on a finished lawn wins without mowing anything.
		if snap.Visited == r.startedOn {
			r.logger.Info("lawn already mowed, run not recorded", "player", r.player)
			return
		}

		run := storage.Run{
			Player:     r.player,
			Money:      snap.Money,
			Tiles:      snap.Tiles,
			Width:      snap.Width,
			Height:     snap.Height,
			DurationMs: int64(snap.WonAt - r.startedAt),
		}
		r.logger.Info("lawn mowed", "player", r.player, "money", run.Money, "duration", run.Duration())

		if r.store == nil {
			return
		}
		if _, err := r.store.SaveRun(run); err != nil {
			r.logger.Warn("could not record run", "error", err)
			return
		}
		r.logger.Debug("run recorded", "player", r.player)

	case lawn.PhaseFadedOut:
		r.logger.Info("back to menu", "player", r.player, "money", snap.Money)
	}
}
