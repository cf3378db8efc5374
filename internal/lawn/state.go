package lawn

import (
	"fmt"

	"github.com/rbrander/lawn-mower/internal/core"
)

// Phase is the top-level mode of a session.
type Phase int

const (
	// PhaseMenu is the title screen shown before the first run.
	PhaseMenu Phase = iota
	// PhaseActive is a run in progress.
	PhaseActive
	// PhaseWon is a finished lawn, fading out.
	PhaseWon
	// PhaseFadedOut follows the fade. It shows the menu but keeps the
	// finished lawn until the next run starts.
	PhaseFadedOut
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseFadedOut:
		return "faded_out"
	default:
		return "unknown"
	}
}

// State is the session's state machine value. WonAt is only meaningful
// in PhaseWon.
type State struct {
	Phase Phase
	WonAt core.Tick
}

// Menu is the initial state.
func Menu() State {
	return State{Phase: PhaseMenu}
}

// Active is a run in progress.
func Active() State {
	return State{Phase: PhaseActive}
}

// Won records the tick at which the last tile was mowed.
func Won(at core.Tick) State {
	return State{Phase: PhaseWon, WonAt: at}
}

// FadedOut is the state after the win fade completes.
func FadedOut() State {
	return State{Phase: PhaseFadedOut}
}

// Running reports whether frames go to the simulation step and game view
// (as opposed to the menu step and menu view).
func (s State) Running() bool {
	return s.Phase == PhaseActive || s.Phase == PhaseWon
}

// Fading reports whether the win fade is in progress.
func (s State) Fading() bool {
	return s.Phase == PhaseWon
}

// FadeProgress returns how far the win fade has advanced at tick, in [0, 1].
// Outside PhaseWon it is 0.
func (s State) FadeProgress(tick, duration core.Tick) float64 {
	if !s.Fading() || duration <= 0 {
		return 0
	}
	return core.ClampF(float64(tick-s.WonAt)/float64(duration), 0, 1)
}

func (s State) String() string {
	if s.Phase == PhaseWon {
		return fmt.Sprintf("won@%d", s.WonAt)
	}
	return s.Phase.String()
}
