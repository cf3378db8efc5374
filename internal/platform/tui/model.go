package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rbrander/lawn-mower/internal/core"
	"github.com/rbrander/lawn-mower/internal/lawn"
)

// Options configures a lawn model.
type Options struct {
	Settings    lawn.Settings
	HoldTimeout core.Tick       // How long a key counts as held after its last press
	Observers   []lawn.Observer // Notified of every session transition
	Clock       core.Clock      // Defaults to the system clock
}

// Model is the Bubble Tea model running one lawn session.
type Model struct {
	session  *lawn.Session
	screen   *core.Screen
	keys     KeyMap
	held     *heldKeys
	clock    core.Clock
	frames   *core.FrameClock
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}

	session := lawn.New(opts.Settings)
	for _, o := range opts.Observers {
		session.Observe(o)
	}
	session.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		held:    newHeldKeys(opts.HoldTimeout),
		clock:   opts.Clock,
		frames:  &core.FrameClock{},
		config:  cfg,
	}
}

// Init starts the frame clock and the tick loop.
func (m Model) Init() tea.Cmd {
	m.frames.Start(m.clock.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Presses are applied immediately; the next frame sees them.
	for _, old := range m.held.Seen(k, m.frames.Tick(m.clock.Now())) {
		m.session.Release(old)
	}
	m.session.Press(k)

	return m, nil
}

// handleResize processes window resize events. The session keeps its
// progress; only the tile size changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame: synthesized releases first, then the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	tick := m.frames.Tick(now)

	for _, k := range m.held.Expire(tick) {
		m.session.Release(k)
	}
	m.session.Frame(tick)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".lawn-mower", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lawn_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session returns the session driven by the model.
func (m Model) Session() *lawn.Session {
	return m.session
}

// IsQuitting returns true once the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
