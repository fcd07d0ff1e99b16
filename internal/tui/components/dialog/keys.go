package dialog

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the key bindings shared by the dialog host and bodies
type KeyMap struct {
	Dismiss  key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Toggle   key.Binding
	Yes      key.Binding
	No       key.Binding
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Previous key.Binding
	Choose   key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the default dialog key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cancel"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "switch"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Choose: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter/c", "close"),
		),
	}
}
