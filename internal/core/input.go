package core

import "sort"

// Key identifies a physical key reported by the input source.
// Identifiers are opaque: only the four arrows carry movement meaning,
// every other key is still a valid "any key" for the menu.
type Key string

// Movement keys.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// IsDirectional returns true for the four arrow keys.
func (k Key) IsDirectional() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	default:
		return false
	}
}

// KeySet is the set of currently-held keys.
// Press adds, Release removes; readers only ever see the latest state.
type KeySet struct {
	held map[Key]struct{}
}

// NewKeySet creates an empty key set, optionally pre-populated.
func NewKeySet(keys ...Key) KeySet {
	s := KeySet{held: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		s.held[k] = struct{}{}
	}
	return s
}

// Press marks a key as held.
func (s *KeySet) Press(k Key) {
	if s.held == nil {
		s.held = make(map[Key]struct{})
	}
	s.held[k] = struct{}{}
}

// Release marks a key as no longer held. Releasing an unheld key is a no-op.
func (s *KeySet) Release(k Key) {
	delete(s.held, k)
}

// Has returns true if the key is currently held.
func (s KeySet) Has(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	return len(s.held)
}

// Keys returns the held keys in sorted order.
func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clear releases every key.
func (s *KeySet) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Clone creates an independent copy of this set.
func (s KeySet) Clone() KeySet {
	clone := NewKeySet()
	for k := range s.held {
		clone.held[k] = struct{}{}
	}
	return clone
}
