package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the session-level key bindings. Everything else is
// forwarded to the focused line editor.
type KeyMap struct {
	Quit        key.Binding
	Commit      key.Binding
	ToggleFocus key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit output")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch editor")),
	}
}
