package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Jump       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart, k.Pause},
		{k.Help, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
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

// Action translates a key message to a game action.
// Help, screenshot and quit are handled by the model and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// holdTicks is how many ticks a jump key counts as held after its last key
// event. Terminals report key repeats but no releases, so a held key is
// inferred from the repeat stream.
func holdTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	// Covers the typical 500 ms auto-repeat delay.
	return max(tickRate*11/20, 1)
}

// holdTracker emulates a key-held level from press and repeat events.
type holdTracker struct {
	window    int
	remaining int
}

func newHoldTracker(tickRate int) *holdTracker {
	return &holdTracker{window: holdTicks(tickRate)}
}

// Press records a key event for the tracked key.
func (h *holdTracker) Press() {
	h.remaining = h.window
}

// Held reports whether the key counts as down this tick.
func (h *holdTracker) Held() bool {
	return h.remaining > 0
}

// Tick advances by one simulation tick.
func (h *holdTracker) Tick() {
	if h.remaining > 0 {
		h.remaining--
	}
}

// Release forgets the key, used on restart so the assist does not carry over.
func (h *holdTracker) Release() {
	h.remaining = 0
}
