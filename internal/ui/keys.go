package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the watch view key bindings.
type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Digit    key.Binding
	Reset    key.Binding
	Full     key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "add step"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "remove step"),
		),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "set n×10%"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Full: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fill"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "v"),
			key.WithHelp("space", "show/hide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Digit, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.Digit},
		{k.Reset, k.Full, k.Toggle, k.Quit},
	}
}
