package lawn

import (
	"fmt"

	"github.com/rbrander/lawn-mower/internal/core"
)

// hudHeight is the number of rows above the lawn (status line + separator).
const hudHeight = 2

// Glyphs for the lawn.
const (
	glyphGrass = '"'
	glyphMowed = '.'
	glyphMower = 'O'
)

// Render draws the view for the current state: the title menu, or the lawn
// with its win overlay and fade.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if !s.state.Running() {
		s.renderMenu(dst)
		return
	}

	s.renderHUD(dst)

	if s.grid.TileSize() == 0 {
		s.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	s.renderLawn(dst)

	if s.state.Fading() {
		s.renderOverlay(dst, "You Win!", fmt.Sprintf("$%d", s.mower.Money))
		dst.Fade(s.state.FadeProgress(s.tick, s.settings.FadeOut))
	}
}

// renderMenu draws the title screen.
func (s *Session) renderMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredColored(h/3, "Lawn Mower", core.ColorBrightGreen)
	dst.DrawTextCenteredColored(h*2/3, "press any key...", core.ColorGray)
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Lawn Mower  $%d  Mowed: %d/%d", s.mower.Money, s.grid.VisitedCount(), s.grid.Tiles())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// lawnOrigin returns the screen position of the lawn's top-left tile,
// centring the lawn below the HUD.
func (s *Session) lawnOrigin(dst *core.Screen) (int, int) {
	ts := s.grid.TileSize()
	lawnW := 2 * ts * s.grid.Width()
	lawnH := ts * s.grid.Height()
	ox := (dst.Width() - lawnW) / 2
	oy := hudHeight + (dst.Height()-hudHeight-lawnH)/2
	return ox, oy
}

// tileRect returns the screen area of the tile at (x, y).
func (s *Session) tileRect(dst *core.Screen, x, y int) core.Rect {
	ts := s.grid.TileSize()
	ox, oy := s.lawnOrigin(dst)
	return core.NewRect(ox+x*2*ts, oy+y*ts, 2*ts, ts)
}

// renderLawn draws every tile and the mower.
func (s *Session) renderLawn(dst *core.Screen) {
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			if s.grid.HasVisited(x, y) {
				dst.DrawRectColored(s.tileRect(dst, x, y), glyphMowed, core.ColorBrightGreen)
			} else {
				dst.DrawRectColored(s.tileRect(dst, x, y), glyphGrass, core.ColorGreen)
			}
		}
	}

	// Mower diameter is 0.8 of a tile.
	dst.DrawDisc(s.tileRect(dst, s.mower.X, s.mower.Y), 0.8, glyphMower, core.ColorBrightBlue)
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+3, line2, core.ColorYellow)
}
