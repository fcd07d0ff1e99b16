package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the demo screen bindings
type KeyMap struct {
	Confirm     key.Binding
	Destructive key.Binding
	Input       key.Binding
	Select      key.Binding
	Loading     key.Binding
	Stacked     key.Binding
	Lookup      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default demo bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "confirm"),
		),
		Destructive: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input"),
		),
		Select: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "select"),
		),
		Loading: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loading"),
		),
		Stacked: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "stacked"),
		),
		Lookup: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "find user"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Destructive, k.Input, k.Select, k.Loading, k.Stacked, k.Lookup, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Destructive, k.Input, k.Select},
		{k.Loading, k.Stacked, k.Lookup, k.Quit},
	}
}
