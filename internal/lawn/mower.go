package lawn

import "github.com/rbrander/lawn-mower/internal/core"

// Direction is the mower's heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionKeys lists movement keys from highest to lowest priority.
var directionKeys = []struct {
	key        core.Key
	xVel, yVel int
}{
	{core.KeyUp, 0, -1},
	{core.KeyDown, 0, 1},
	{core.KeyLeft, -1, 0},
	{core.KeyRight, 1, 0},
}

// Mower is the player token.
// At most one of XVel, YVel is non-zero, and each is in {-1, 0, 1}.
type Mower struct {
	X, Y       int
	XVel, YVel int
	Money      int
	MsPerMove  core.Tick // Minimum ticks between two moves
	LastMove   core.Tick // Tick of the last committed advance
}

// NewMower creates a stationary mower at (0, 0) with no money.
func NewMower(msPerMove core.Tick) Mower {
	return Mower{MsPerMove: msPerMove}
}

// Credit adds money to the mower's wallet.
func (m *Mower) Credit(amount int) {
	m.Money += amount
}

// SetDirection points the mower along the highest-priority held arrow
// (up, then down, then left, then right). With no arrow held the previous
// heading is kept. Returns true if an arrow was held.
func (m *Mower) SetDirection(keys core.KeySet) bool {
	for _, d := range directionKeys {
		if keys.Has(d.key) {
			m.XVel, m.YVel = d.xVel, d.yVel
			return true
		}
	}
	return false
}

// Heading returns the current direction of travel.
func (m Mower) Heading() Direction {
	switch {
	case m.YVel < 0:
		return DirUp
	case m.YVel > 0:
		return DirDown
	case m.XVel < 0:
		return DirLeft
	case m.XVel > 0:
		return DirRight
	default:
		return DirNone
	}
}

// TryAdvance moves the mower one step along its heading if at least
// MsPerMove ticks have passed since the last move. Each axis is committed
// only if it stays on the lawn; a blocked axis keeps its position and its
// velocity. The tile under the mower is visited after every advance, moved
// or not. Returns true if an advance happened.
func (m *Mower) TryAdvance(tick core.Tick, g *Grid) bool {
	if tick-m.LastMove < m.MsPerMove {
		return false
	}
	m.LastMove = tick

	bounds := g.Bounds()
	if nx := m.X + m.XVel; bounds.Contains(nx, m.Y) {
		m.X = nx
	}
	if ny := m.Y + m.YVel; bounds.Contains(m.X, ny) {
		m.Y = ny
	}

	g.Visit(m.X, m.Y, m)
	return true
}
