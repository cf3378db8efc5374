package tui

import (
	"sort"

	"github.com/rbrander/lawn-mower/internal/core"
)

// heldKeys synthesizes key releases. Terminals only report presses (and
// auto-repeats while a key stays down), so a key counts as held until no
// press has been seen for the hold timeout.
type heldKeys struct {
	lastSeen map[core.Key]core.Tick
	timeout  core.Tick
}

func newHeldKeys(timeout core.Tick) *heldKeys {
	return &heldKeys{
		lastSeen: make(map[core.Key]core.Tick),
		timeout:  timeout,
	}
}

// Seen records a press at tick. Terminals only repeat the latest key, so
// a directional press releases every other direction at once; they are
// returned in sorted order.
func (h *heldKeys) Seen(k core.Key, tick core.Tick) []core.Key {
	var released []core.Key
	if k.IsDirectional() {
		for other := range h.lastSeen {
			if other != k && other.IsDirectional() {
				released = append(released, other)
				delete(h.lastSeen, other)
			}
		}
		sortKeys(released)
	}
	h.lastSeen[k] = tick
	return released
}

// Expire forgets every key not seen within the timeout and returns them
// in sorted order.
func (h *heldKeys) Expire(tick core.Tick) []core.Key {
	var released []core.Key
	for k, seen := range h.lastSeen {
		if tick-seen >= h.timeout {
			released = append(released, k)
			delete(h.lastSeen, k)
		}
	}
	sortKeys(released)
	return released
}

func sortKeys(keys []core.Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
