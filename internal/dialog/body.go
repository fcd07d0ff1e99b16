package dialog

import tea "github.com/charmbracelet/bubbletea/v2"

// Body is the interactive content of a dialog. It owns its own form state and
// is the only thing that can produce a non-cancel result.
type Body interface {
	Init() tea.Cmd
	Update(tea.Msg) (Body, tea.Cmd)
	View() string
}

// Resolver ends the dialog's life with result. Bodies return the command it
// produces from Update; nil means cancelled.
type Resolver func(result any) tea.Cmd

// Factory builds a body bound to its resolver. Factories close over their own
// typed props.
type Factory func(resolve Resolver) Body

// Closer is implemented by bodies that hold resources (timers) which must be
// released when the host drops them.
type Closer interface {
	Close()
}
