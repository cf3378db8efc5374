package core

import "testing"

func TestKeySetPressRelease(t *testing.T) {
	var s KeySet

	if s.Len() != 0 || s.Has(KeyUp) {
		t.Fatal("zero KeySet should be empty")
	}

	s.Press(KeyUp)
	s.Press(KeyUp)
	s.Press("x")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 (presses are not counted)", s.Len())
	}
	if !s.Has(KeyUp) || !s.Has("x") {
		t.Error("pressed keys should be held")
	}

	s.Release(KeyUp)
	s.Release(KeyDown) // never pressed

	if s.Has(KeyUp) {
		t.Error("released key should not be held")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestKeySetKeysSorted(t *testing.T) {
	s := NewKeySet(KeyUp, KeyLeft, KeyDown)

	got := s.Keys()
	want := []Key{KeyDown, KeyLeft, KeyUp}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestKeySetCloneIsIndependent(t *testing.T) {
	s := NewKeySet(KeyRight)
	clone := s.Clone()

	s.Clear()

	if s.Len() != 0 {
		t.Error("Clear should release every key")
	}
	if !clone.Has(KeyRight) {
		t.Error("clone should keep its own keys")
	}
}

func TestKeyIsDirectional(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsDirectional() {
			t.Errorf("%q should be directional", k)
		}
	}
	if Key("enter").IsDirectional() {
		t.Error("enter should not be directional")
	}
}
