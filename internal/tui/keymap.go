package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the lookup screen.
type KeyMap struct {
	Clear key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("enter", "ctrl+u"),
			key.WithHelp("enter", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp renders the bindings as a one line hint.
func (k KeyMap) ShortHelp() string {
	c, q := k.Clear.Help(), k.Quit.Help()
	return c.Key + " " + c.Desc + " • " + q.Key + " " + q.Desc
}
