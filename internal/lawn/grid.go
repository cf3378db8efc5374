// Package lawn implements the lawn mowing game: a mower crosses a grid of
// grass tiles, earns a flat reward for each tile on its first visit, and
// wins once every tile is mowed.
package lawn

import (
	"fmt"

	"github.com/rbrander/lawn-mower/internal/core"
)

// Wallet receives rewards for newly mowed tiles.
type Wallet interface {
	Credit(amount int)
}

// Grid is the lawn: a fixed width x height set of tiles, each with a
// visited flag that never reverts during a run.
type Grid struct {
	width    int
	height   int
	reward   int
	visited  []bool // Row-major, len = width*height
	count    int    // Number of visited tiles
	tileSize int    // Rendering scale in screen rows, recomputed on resize
}

// NewGrid creates an unmowed lawn. Panics if either dimension is not
// positive; sizes come from validated config.
func NewGrid(width, height, reward int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("lawn: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:   width,
		height:  height,
		reward:  reward,
		visited: make([]bool, width*height),
	}
}

// Width returns the lawn width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the lawn height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the tile coordinates as a rectangle.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// Tiles returns the total number of tiles.
func (g *Grid) Tiles() int {
	return g.width * g.height
}

// HasVisited reports whether the tile at (x, y) has been mowed.
// Coordinates outside the lawn are never visited.
func (g *Grid) HasVisited(x, y int) bool {
	if !g.Bounds().Contains(x, y) {
		return false
	}
	return g.visited[y*g.width+x]
}

// HasVisitedAll reports whether every tile has been mowed.
func (g *Grid) HasVisitedAll() bool {
	return g.count == len(g.visited)
}

// VisitedCount returns the number of mowed tiles.
func (g *Grid) VisitedCount() int {
	return g.count
}

// Visit mows the tile at (x, y). The first visit marks the tile and
// credits the wallet with the reward; later visits change nothing.
// Returns true if the tile was newly mowed.
func (g *Grid) Visit(x, y int, w Wallet) bool {
	if !g.Bounds().Contains(x, y) {
		return false
	}
	i := y*g.width + x
	if g.visited[i] {
		return false
	}
	g.visited[i] = true
	g.count++
	if w != nil {
		w.Credit(g.reward)
	}
	return true
}

// Reset restores the lawn to unmowed. Only used when a new run starts.
func (g *Grid) Reset() {
	for i := range g.visited {
		g.visited[i] = false
	}
	g.count = 0
}

// Resize recomputes the tile size for a view of the given size:
// min(viewW/width, viewH/height), with columns counted in pairs because a
// terminal cell is about half as wide as it is tall.
func (g *Grid) Resize(viewW, viewH int) {
	g.tileSize = core.Max(0, core.Min(viewW/2/g.width, viewH/g.height))
}

// TileSize returns the current tile height in screen rows (tile width is
// twice that in columns). Zero means the view is too small to draw.
func (g *Grid) TileSize() int {
	return g.tileSize
}
