package lawn

import (
	"testing"

	"github.com/rbrander/lawn-mower/internal/core"
)

func stripSettings() Settings {
	return Settings{
		Width:      3,
		Height:     1,
		PayPerTile: 2,
		MsPerMove:  300,
		FadeOut:    2000,
	}
}

type transitionLog []string

func (l *transitionLog) OnTransition(from, to State, _ Snapshot) {
	*l = append(*l, from.String()+"->"+to.String())
}

// mowStrip plays a 3x1 lawn to the win holding Right and returns the session
// at tick 600, the frame that mows the last tile.
func mowStrip(t *testing.T, settings Settings) *Session {
	t.Helper()

	s := New(settings)
	s.Press(core.KeyRight)

	s.Frame(16)
	if s.State().Phase != PhaseActive {
		t.Fatalf("any held key should start play, phase = %s", s.State().Phase)
	}

	s.Frame(300)
	snap := s.Snapshot()
	if snap.X != 1 || snap.Y != 0 || snap.Money != 4 {
		t.Fatalf("after first move: pos=(%d, %d) money=%d, expected (1, 0) and 4", snap.X, snap.Y, snap.Money)
	}

	s.Frame(450)
	if s.Snapshot().X != 1 {
		t.Fatal("moved again before the cadence allowed")
	}

	s.Frame(600)
	return s
}

func TestSessionStartsInMenu(t *testing.T) {
	s := New(stripSettings())

	for tick := core.Tick(0); tick < 1000; tick += 16 {
		s.Frame(tick)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseMenu {
		t.Errorf("phase = %s, expected menu with no keys held", snap.Phase)
	}
	if snap.Money != 0 || snap.Visited != 0 || snap.X != 0 || snap.Y != 0 {
		t.Errorf("menu should not simulate: %+v", snap)
	}
}

func TestSessionWinsStrip(t *testing.T) {
	s := mowStrip(t, stripSettings())

	snap := s.Snapshot()
	if snap.X != 2 || snap.Money != 6 {
		t.Errorf("after second move: x=%d money=%d, expected 2 and 6", snap.X, snap.Money)
	}
	if !s.Grid().HasVisitedAll() {
		t.Error("every tile should be mowed")
	}
	if got := s.State(); got != Won(600) {
		t.Errorf("state = %s, expected won@600", got)
	}
	if s.schedule.Pending() != 1 {
		t.Errorf("pending events = %d, expected the fade-out", s.schedule.Pending())
	}
}

func TestSessionWinDetectedOnce(t *testing.T) {
	s := mowStrip(t, stripSettings())

	for tick := core.Tick(616); tick < 2000; tick += 16 {
		s.Frame(tick)
	}

	if got := s.State(); got != Won(600) {
		t.Errorf("state = %s, the win tick must not move", got)
	}
	if s.schedule.Pending() != 1 {
		t.Errorf("pending events = %d, the fade must be armed once", s.schedule.Pending())
	}
}

func TestSessionFadesOutToMenu(t *testing.T) {
	s := mowStrip(t, stripSettings())
	s.Release(core.KeyRight)

	s.Frame(2599)
	if s.State().Phase != PhaseWon {
		t.Fatalf("phase = %s before the fade duration elapsed", s.State().Phase)
	}

	s.Frame(2600)
	if s.State().Phase != PhaseFadedOut {
		t.Fatalf("phase = %s, expected faded_out at won+2000", s.State().Phase)
	}
	if s.State().Running() {
		t.Error("a faded out session should not be running")
	}

	// Progress is carried while the menu is shown.
	for tick := core.Tick(2616); tick < 4000; tick += 16 {
		s.Frame(tick)
	}
	snap := s.Snapshot()
	if snap.X != 2 || snap.Money != 6 || snap.Visited != 3 {
		t.Errorf("faded out session changed progress: %+v", snap)
	}

	screen := core.NewScreen(40, 12)
	s.Resize(40, 12)
	s.Render(screen)
	if !containsText(screen, "press any key") {
		t.Errorf("faded out session should render the menu, got:\n%s", screen)
	}
}

func TestSessionFadeFiresOnLateFrame(t *testing.T) {
	s := mowStrip(t, stripSettings())
	s.Release(core.KeyRight)

	// The host skipped frames; the fade still applies on the next one.
	s.Frame(9000)
	if s.State().Phase != PhaseFadedOut {
		t.Errorf("phase = %s, expected faded_out", s.State().Phase)
	}
}

func TestSessionRestartStartsFreshLawn(t *testing.T) {
	s := mowStrip(t, stripSettings())
	s.Release(core.KeyRight)
	s.Frame(2600)

	s.Press("space")
	s.Frame(2616)

	snap := s.Snapshot()
	if snap.Phase != PhaseActive {
		t.Fatalf("phase = %s, expected active", snap.Phase)
	}
	if snap.X != 0 || snap.Y != 0 || snap.Visited != 1 || snap.Money != 2 {
		t.Errorf("restart should begin a fresh lawn on the start tile, got %+v", snap)
	}

	s.Frame(2632)
	if s.State().Phase != PhaseActive {
		t.Errorf("fresh lawn should not win immediately, phase = %s", s.State().Phase)
	}
}

func TestSessionRestartCarryingProgressWinsAgain(t *testing.T) {
	settings := stripSettings()
	settings.CarryOverProgress = true

	s := mowStrip(t, settings)
	s.Release(core.KeyRight)
	s.Frame(2600)

	s.Press("space")
	s.Frame(2616)
	snap := s.Snapshot()
	if snap.Phase != PhaseActive || snap.Money != 6 || snap.X != 2 {
		t.Fatalf("carried restart should keep progress, got %+v", snap)
	}

	s.Frame(2632)
	if got := s.State(); got != Won(2632) {
		t.Errorf("state = %s, a mowed lawn should win again at once", got)
	}
	s.Release("space")

	s.Frame(4632)
	if s.State().Phase != PhaseFadedOut {
		t.Errorf("phase = %s, the second win should fade out too", s.State().Phase)
	}
}

func TestSessionKeepsHeadingWithoutKeys(t *testing.T) {
	settings := stripSettings()
	settings.Width = 5

	s := New(settings)
	s.Press(core.KeyRight)
	s.Frame(16)
	s.Frame(300)
	s.Release(core.KeyRight)

	s.Frame(600)
	s.Frame(900)

	if x := s.Snapshot().X; x != 3 {
		t.Errorf("x = %d, the mower should keep heading right", x)
	}
}

func TestSessionObserverSeesTransitions(t *testing.T) {
	var log transitionLog
	s := New(stripSettings())
	s.Observe(&log)

	s.Press(core.KeyRight)
	s.Frame(16)
	s.Frame(300)
	s.Frame(600)
	s.Release(core.KeyRight)
	s.Frame(2600)

	want := []string{"menu->active", "active->won@600", "won@600->faded_out"}
	if len(log) != len(want) {
		t.Fatalf("transitions = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("transition %d = %q, expected %q", i, log[i], want[i])
		}
	}
}

func TestSessionObserverSnapshotAtWin(t *testing.T) {
	var won Snapshot
	s := New(stripSettings())
	s.Observe(ObserverFunc(func(_, to State, snap Snapshot) {
		if to.Phase == PhaseWon {
			won = snap
		}
	}))

	s.Press(core.KeyRight)
	for _, tick := range []core.Tick{16, 300, 600} {
		s.Frame(tick)
	}

	if won.Money != 6 || won.Visited != 3 || won.WonAt != 600 {
		t.Errorf("win snapshot = %+v", won)
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := map[core.Tick][]core.Key{
		16:   {core.KeyDown},
		400:  {core.KeyRight},
		1300: {core.KeyUp, core.KeyLeft},
		2000: {},
		2900: {core.KeyRight},
	}

	run := func() Snapshot {
		settings := stripSettings()
		settings.Width, settings.Height = 4, 3
		s := New(settings)
		for tick := core.Tick(0); tick <= 6000; tick += 16 {
			if keys, ok := script[tick]; ok {
				for _, k := range s.Keys().Keys() {
					s.Release(k)
				}
				for _, k := range keys {
					s.Press(k)
				}
			}
			s.Frame(tick)
		}
		return s.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same inputs produced different sessions:\n%+v\n%+v", a, b)
	}
}

func TestSessionDebugState(t *testing.T) {
	s := mowStrip(t, stripSettings())

	out := s.DebugState()
	for _, want := range []string{"won@600", "Money: $6", "Mowed: 3/3", "@2600"} {
		if !containsString(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}

func TestSessionKeyHeldThroughFadeShowsMenu(t *testing.T) {
	var log transitionLog
	s := New(stripSettings())
	s.Observe(&log)

	s.Press(core.KeyRight)
	for _, tick := range []core.Tick{16, 300, 600} {
		s.Frame(tick)
	}

	// Right is still held when the fade fires.
	s.Frame(2600)
	if got := s.State().Phase; got != PhaseFadedOut {
		t.Fatalf("phase = %s, the fade frame must end in faded_out", got)
	}

	screen := core.NewScreen(40, 12)
	s.Resize(40, 12)
	s.Render(screen)
	if !containsText(screen, "press any key") {
		t.Errorf("fade frame should render the menu, got:\n%s", screen)
	}

	// The held key starts the next run on the following frame.
	s.Frame(2616)
	if got := s.State().Phase; got != PhaseActive {
		t.Errorf("phase = %s, expected active on the frame after the fade", got)
	}

	want := []string{"menu->active", "active->won@600", "won@600->faded_out", "faded_out->active"}
	if len(log) != len(want) {
		t.Fatalf("transitions = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("transition %d = %q, expected %q", i, log[i], want[i])
		}
	}
}
