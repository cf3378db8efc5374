package lawn

import "testing"

func TestGridVisitIsMonotonic(t *testing.T) {
	g := NewGrid(4, 3, 2)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if g.HasVisited(x, y) {
				t.Fatalf("tile (%d, %d) visited before any visit", x, y)
			}
		}
	}

	g.Visit(2, 1, nil)

	for i := 0; i < 3; i++ {
		if !g.HasVisited(2, 1) {
			t.Fatal("visited tile reverted to unvisited")
		}
		g.Visit(0, 0, nil)
	}
	if g.HasVisited(3, 2) {
		t.Error("unrelated tile should still be unvisited")
	}
}

func TestGridVisitRewardsOnce(t *testing.T) {
	g := NewGrid(3, 1, 2)
	m := NewMower(300)

	if !g.Visit(1, 0, &m) {
		t.Fatal("first visit should mow the tile")
	}
	if m.Money != 2 {
		t.Fatalf("money after first visit = %d, expected 2", m.Money)
	}

	for i := 0; i < 5; i++ {
		if g.Visit(1, 0, &m) {
			t.Error("repeat visit reported a newly mowed tile")
		}
	}
	if m.Money != 2 {
		t.Errorf("repeat visits changed money to %d", m.Money)
	}
}

func TestGridHasVisitedAll(t *testing.T) {
	g := NewGrid(3, 1, 2)

	g.Visit(0, 0, nil)
	g.Visit(0, 0, nil)
	g.Visit(1, 0, nil)
	if g.HasVisitedAll() {
		t.Fatal("two distinct tiles of three should not complete the lawn")
	}
	if g.VisitedCount() != 2 {
		t.Errorf("VisitedCount() = %d, expected 2", g.VisitedCount())
	}

	g.Visit(2, 0, nil)
	if !g.HasVisitedAll() {
		t.Error("three distinct tiles should complete a 3x1 lawn")
	}
}

func TestGridOutOfBoundsIsIgnored(t *testing.T) {
	g := NewGrid(2, 2, 5)
	m := NewMower(300)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Visit(p[0], p[1], &m) {
			t.Errorf("Visit(%d, %d) should not mow outside the lawn", p[0], p[1])
		}
		if g.HasVisited(p[0], p[1]) {
			t.Errorf("HasVisited(%d, %d) should be false outside the lawn", p[0], p[1])
		}
	}
	if m.Money != 0 {
		t.Errorf("money = %d, expected 0", m.Money)
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(2, 1, 1)
	g.Visit(0, 0, nil)
	g.Visit(1, 0, nil)

	g.Reset()

	if g.VisitedCount() != 0 || g.HasVisited(0, 0) || g.HasVisitedAll() {
		t.Error("Reset should leave every tile unmowed")
	}
}

func TestGridResize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		viewW, viewH int
		expected     int
	}{
		{"height bound", 3, 1, 60, 10, 10},
		{"width bound", 3, 1, 12, 10, 2},
		{"default lawn in 80x22", 10, 7, 80, 22, 3},
		{"too small", 10, 7, 15, 22, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.w, tc.h, 2)
			g.Resize(tc.viewW, tc.viewH)
			if g.TileSize() != tc.expected {
				t.Errorf("TileSize() = %d, expected %d", g.TileSize(), tc.expected)
			}
		})
	}
}

func TestNewGridPanicsOnEmptyLawn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 1) should panic")
		}
	}()
	NewGrid(0, 1, 2)
}
