package lawn

import (
	"fmt"
	"strings"

	"github.com/rbrander/lawn-mower/internal/core"
)

// Snapshot captures the observable session state for tests, observers
// and debugging.
type Snapshot struct {
	Tick    core.Tick
	Phase   Phase
	WonAt   core.Tick
	X, Y    int
	XVel    int
	YVel    int
	Heading Direction
	Money   int
	Visited int // Mowed tiles
	Tiles   int // Total tiles
	Width   int
	Height  int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Phase:   s.state.Phase,
		WonAt:   s.state.WonAt,
		X:       s.mower.X,
		Y:       s.mower.Y,
		XVel:    s.mower.XVel,
		YVel:    s.mower.YVel,
		Heading: s.mower.Heading(),
		Money:   s.mower.Money,
		Visited: s.grid.VisitedCount(),
		Tiles:   s.grid.Tiles(),
		Width:   s.grid.Width(),
		Height:  s.grid.Height(),
	}
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, State: %s, Keys: %v\n", s.tick, s.state, s.keys.Keys()))
	b.WriteString(fmt.Sprintf("Mower: (%d, %d) heading %s, Money: $%d\n", s.mower.X, s.mower.Y, s.mower.Heading(), s.mower.Money))
	b.WriteString(fmt.Sprintf("Mowed: %d/%d, Next event: %s\n", s.grid.VisitedCount(), s.grid.Tiles(), s.nextEvent()))
	return b.String()
}

func (s *Session) nextEvent() string {
	at, ok := s.schedule.NextAt()
	if !ok {
		return "none"
	}
	return fmt.Sprintf("@%d", at)
}
