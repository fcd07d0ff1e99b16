package dialog

import (
	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Variant selects how a confirm dialog presents its confirm button
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// ConfirmProps configure a confirm dialog
type ConfirmProps struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Variant     Variant
}

// ConfirmBody asks a yes/no question and resolves with a bool
type ConfirmBody struct {
	props   ConfirmProps
	resolve dialog.Resolver
	keys    KeyMap

	focusConfirm bool
}

var _ dialog.Body = (*ConfirmBody)(nil)

// NewConfirm returns a factory for a confirm dialog
func NewConfirm(props ConfirmProps) dialog.Factory {
	if props.ConfirmText == "" {
		props.ConfirmText = "Confirm"
	}
	if props.CancelText == "" {
		props.CancelText = "Cancel"
	}
	if props.Variant == "" {
		props.Variant = VariantDefault
	}

	return func(resolve dialog.Resolver) dialog.Body {
		return &ConfirmBody{
			props:   props,
			resolve: resolve,
			keys:    DefaultKeyMap(),
			// Destructive actions start on the safe choice
			focusConfirm: props.Variant != VariantDestructive,
		}
	}
}

// Init initializes the dialog
func (d *ConfirmBody) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *ConfirmBody) Update(msg tea.Msg) (dialog.Body, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.Toggle, d.keys.Next, d.keys.Previous):
		d.focusConfirm = !d.focusConfirm
	case key.Matches(keyMsg, d.keys.Submit):
		return d, d.resolve(d.focusConfirm)
	case key.Matches(keyMsg, d.keys.Yes):
		return d, d.resolve(true)
	case key.Matches(keyMsg, d.keys.No):
		return d, d.resolve(false)
	}
	return d, nil
}

// confirmFocused reports whether the confirm button has focus
func (d *ConfirmBody) confirmFocused() bool {
	return d.focusConfirm
}

// ShortHelp returns the bindings shown under the dialog
func (d *ConfirmBody) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Toggle, d.keys.Submit, d.keys.Yes, d.keys.No}
}

// View renders the dialog
func (d *ConfirmBody) View() string {
	s := styles.CurrentTheme().S()

	icon, title := styles.CheckIcon, s.Title
	if d.props.Variant == VariantDestructive {
		icon, title = styles.WarningIcon, s.Error.Bold(true)
	}

	cancelStyle, confirmStyle := s.Button, s.Button
	if d.focusConfirm {
		confirmStyle = s.ButtonFocused
		if d.props.Variant == VariantDestructive {
			confirmStyle = s.ButtonDestructive
		}
	} else {
		cancelStyle = s.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Center,
		cancelStyle.Render(d.props.CancelText),
		"  ",
		confirmStyle.Render(d.props.ConfirmText),
	)

	parts := []string{title.Render(icon + " " + d.props.Title)}
	if d.props.Message != "" {
		parts = append(parts, "", s.Muted.Render(d.props.Message))
	}
	parts = append(parts, "", buttons)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
