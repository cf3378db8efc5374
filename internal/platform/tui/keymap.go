package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rbrander/lawn-mower/internal/core"
)

// KeyMap translates Bubble Tea key messages to session keys.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, with WASD and vim
// keys as alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a session key.
// Movement bindings map to the four directional keys; any other key keeps
// its own name so it can still start a run from the menu.
// isQuit is true for the quit binding, in which case k is empty.
func (km KeyMap) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return "", true
	case key.Matches(msg, km.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.Right):
		return core.KeyRight, false
	}
	return core.Key(msg.String()), false
}
