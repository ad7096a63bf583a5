package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// BoardKeys defines the key bindings of the sound board
type BoardKeys struct {
	Down     key.Binding
	Help     key.Binding
	Play     key.Binding
	Position key.Binding
	Quit     key.Binding
	Up       key.Binding
}

// DefaultBoardKeys returns the default sound board key bindings
func DefaultBoardKeys() BoardKeys {
	return BoardKeys{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "play"),
		),
		Position: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "play by position"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k BoardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k BoardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Position},
		{k.Help, k.Quit},
	}
}
