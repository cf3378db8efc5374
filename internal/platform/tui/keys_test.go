package tui

import (
	"testing"

	"github.com/rbrander/lawn-mower/internal/core"
)

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(500)

	h.Seen(core.KeyRight, 100)
	h.Seen("enter", 300)

	if released := h.Expire(599); len(released) != 0 {
		t.Errorf("nothing should expire before the timeout, got %v", released)
	}

	released := h.Expire(600)
	if len(released) != 1 || released[0] != core.KeyRight {
		t.Errorf("Expire(600) = %v, expected [right]", released)
	}
	if released := h.Expire(800); len(released) != 1 || released[0] != "enter" {
		t.Errorf("Expire(800) = %v, expected [enter]", released)
	}
}

func TestHeldKeysRepeatKeepsKeyHeld(t *testing.T) {
	h := newHeldKeys(500)

	// Auto-repeat refreshes the key.
	for tick := core.Tick(0); tick <= 2000; tick += 30 {
		h.Seen(core.KeyDown, tick)
		if released := h.Expire(tick); len(released) != 0 {
			t.Fatalf("repeating key released at %d", tick)
		}
	}

	if released := h.Expire(2490); len(released) != 1 {
		t.Errorf("key should be released 500ms after the last repeat, got %v", released)
	}
}

func TestHeldKeysExpireSorted(t *testing.T) {
	h := newHeldKeys(100)
	for _, k := range []core.Key{"x", "tab", core.KeyUp, "enter"} {
		h.Seen(k, 0)
	}

	released := h.Expire(100)
	want := []core.Key{"enter", "tab", core.KeyUp, "x"}
	if len(released) != len(want) {
		t.Fatalf("Expire() = %v, expected %v", released, want)
	}
	for i := range want {
		if released[i] != want[i] {
			t.Errorf("Expire()[%d] = %q, expected %q", i, released[i], want[i])
		}
	}
}

func TestHeldKeysNewDirectionReleasesOthers(t *testing.T) {
	h := newHeldKeys(500)

	if released := h.Seen(core.KeyUp, 0); len(released) != 0 {
		t.Errorf("first press released %v", released)
	}
	h.Seen("space", 10)

	released := h.Seen(core.KeyLeft, 100)
	if len(released) != 1 || released[0] != core.KeyUp {
		t.Fatalf("Seen(left) = %v, expected [up]", released)
	}

	// Repeats of the same key release nothing.
	if released := h.Seen(core.KeyLeft, 130); len(released) != 0 {
		t.Errorf("repeat released %v", released)
	}

	// Non-directional keys are unaffected either way.
	released = h.Expire(510)
	if len(released) != 1 || released[0] != "space" {
		t.Errorf("Expire(510) = %v, expected [space]", released)
	}
}
