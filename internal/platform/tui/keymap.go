package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ledpong/internal/core"
)

// KeyMap defines the key bindings of the preview.
type KeyMap struct {
	P1Left   key.Binding
	P1Right  key.Binding
	P2Left   key.Binding
	P2Right  key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Left, k.P1Right, k.P2Left, k.P2Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Left, k.P1Right, k.P2Left, k.P2Right},
		{k.Pause, k.Restart, k.Snapshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "P1 left"),
		),
		P1Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "P1 right"),
		),
		P2Left: key.NewBinding(
			key.WithKeys("left", "j"),
			key.WithHelp("←/j", "P2 left"),
		),
		P2Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "P2 right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new match"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PaddleKey translates a key message to a paddle command.
// ok is false when the key does not steer a paddle.
func (k KeyMap) PaddleKey(msg tea.KeyMsg) (p core.Player, cmd core.Command, ok bool) {
	switch {
	case key.Matches(msg, k.P1Left):
		return core.Player1, core.MoveLeft, true
	case key.Matches(msg, k.P1Right):
		return core.Player1, core.MoveRight, true
	case key.Matches(msg, k.P2Left):
		return core.Player2, core.MoveLeft, true
	case key.Matches(msg, k.P2Right):
		return core.Player2, core.MoveRight, true
	}
	return core.Player1, core.Hold, false
}
