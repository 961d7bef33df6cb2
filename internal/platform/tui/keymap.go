package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Scores  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Restart, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Restart},
		{k.Scores, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
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

// SteerKey translates a key press to the W/A/S/D letter the game steers
// with. Arrow keys map to their letter; letters keep their case.
func (k KeyMap) SteerKey(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case "up":
		return "w", true
	case "down":
		return "s", true
	case "left":
		return "a", true
	case "right":
		return "d", true
	}

	if key.Matches(msg, k.Up, k.Down, k.Left, k.Right) {
		return msg.String(), true
	}
	return "", false
}
