package lawn

import (
	"github.com/rbrander/lawn-mower/internal/core"
)

// Observer is notified of every state transition.
type Observer interface {
	OnTransition(from, to State, snap Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(from, to State, snap Snapshot)

// OnTransition calls f.
func (f ObserverFunc) OnTransition(from, to State, snap Snapshot) {
	f(from, to, snap)
}

// Session is the complete state of one player's game: the lawn, the mower,
// the state machine, the held keys and the pending timed events.
// It is not safe for concurrent use; the frame driver owns it.
type Session struct {
	settings  Settings
	grid      *Grid
	mower     Mower
	state     State
	keys      core.KeySet
	schedule  Schedule
	observers []Observer

	tick    core.Tick // Tick of the latest frame
	screenW int
	screenH int
}

// New creates a session in the menu with an unmowed lawn.
func New(settings Settings) *Session {
	return &Session{
		settings: settings,
		grid:     NewGrid(settings.Width, settings.Height, settings.PayPerTile),
		mower:    NewMower(settings.MsPerMove),
		state:    Menu(),
		keys:     core.NewKeySet(),
	}
}

// Observe registers an observer for state transitions.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Press records a key as held.
func (s *Session) Press(k core.Key) {
	s.keys.Press(k)
}

// Release records a key as no longer held.
func (s *Session) Release(k core.Key) {
	s.keys.Release(k)
}

// Keys returns a copy of the held keys.
func (s *Session) Keys() core.KeySet {
	return s.keys.Clone()
}

// State returns the current state machine value.
func (s *Session) State() State {
	return s.state
}

// Grid returns the lawn. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Frame advances the session to tick: due events fire first, then the
// menu step or the simulation step runs depending on the state. A frame
// whose events changed the state runs no step, so the new state is drawn
// at least once before input can leave it.
// Ticks must not decrease between calls.
func (s *Session) Frame(tick core.Tick) {
	s.tick = tick
	if s.processEvents(tick) {
		return
	}

	if s.state.Running() {
		s.stepPlaying(tick)
	} else {
		s.stepMenu()
	}
}

// processEvents applies every scheduled event due at tick and reports
// whether any of them changed the state.
func (s *Session) processEvents(tick core.Tick) bool {
	before := s.state
	for _, ev := range s.schedule.Due(tick) {
		switch ev {
		case EventFadeOut:
			// Stops the run whatever it is doing; the menu and a finished
			// fade have nothing to stop.
			if s.state.Running() {
				s.transition(FadedOut())
			}
		}
	}
	return s.state != before
}

// stepMenu starts a run as soon as any key is held.
func (s *Session) stepMenu() {
	if s.keys.Len() == 0 {
		return
	}

	if s.state.Phase == PhaseFadedOut && !s.settings.CarryOverProgress {
		s.resetProgress()
	}

	s.transition(Active())

	// The mower starts on its tile, so that tile is mowed straight away.
	s.grid.Visit(s.mower.X, s.mower.Y, &s.mower)
}

// stepPlaying is one simulation step: steer, advance on cadence, and
// detect the win.
func (s *Session) stepPlaying(tick core.Tick) {
	s.mower.SetDirection(s.keys)
	s.mower.TryAdvance(tick, s.grid)

	if s.state.Phase == PhaseActive && s.grid.HasVisitedAll() {
		s.transition(Won(tick))
		s.schedule.Arm(tick+s.settings.FadeOut, EventFadeOut)
	}
}

// resetProgress starts a fresh lawn with a fresh mower.
func (s *Session) resetProgress() {
	s.grid.Reset()
	s.mower = NewMower(s.settings.MsPerMove)
}

// transition moves the state machine and notifies observers.
func (s *Session) transition(to State) {
	from := s.state
	s.state = to

	snap := s.Snapshot()
	for _, o := range s.observers {
		o.OnTransition(from, to, snap)
	}
}

// Resize adapts the layout to a new screen size.
func (s *Session) Resize(screenW, screenH int) {
	s.screenW = screenW
	s.screenH = screenH
	s.grid.Resize(screenW, screenH-hudHeight)
}
