package dialog

import (
	"strings"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const inputCharLimit = 256

// InputProps configure a text input dialog
type InputProps struct {
	Title        string
	Placeholder  string
	DefaultValue string
	Label        string
}

// InputBody asks for a line of text. It resolves with the trimmed text, or
// nil when the text is blank.
type InputBody struct {
	props   InputProps
	resolve dialog.Resolver
	keys    KeyMap

	input textinput.Model
	focus tea.Cmd
}

var _ dialog.Body = (*InputBody)(nil)

// NewInput returns a factory for a text input dialog
func NewInput(props InputProps) dialog.Factory {
	return func(resolve dialog.Resolver) dialog.Body {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = props.Placeholder
		ti.CharLimit = inputCharLimit
		ti.SetValue(props.DefaultValue)

		d := &InputBody{
			props:   props,
			resolve: resolve,
			keys:    DefaultKeyMap(),
			input:   ti,
		}
		d.focus = d.input.Focus()
		return d
	}
}

// Init starts the cursor
func (d *InputBody) Init() tea.Cmd {
	return d.focus
}

// Update handles messages
func (d *InputBody) Update(msg tea.Msg) (dialog.Body, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, d.keys.Submit):
			return d, d.submit()
		case key.Matches(keyMsg, d.keys.Cancel):
			return d, d.resolve(nil)
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *InputBody) submit() tea.Cmd {
	value := strings.TrimSpace(d.input.Value())
	if value == "" {
		return d.resolve(nil)
	}
	return d.resolve(value)
}

// Value returns the current text
func (d *InputBody) Value() string {
	return d.input.Value()
}

// ShortHelp returns the bindings shown under the dialog
func (d *InputBody) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Submit, d.keys.Cancel}
}

// View renders the dialog
func (d *InputBody) View() string {
	s := styles.CurrentTheme().S()

	parts := []string{s.Title.Render(d.props.Title), ""}
	if d.props.Label != "" {
		parts = append(parts, s.Bold.Render(d.props.Label))
	}
	parts = append(parts,
		s.InputLine.Render(d.input.View()),
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			s.Button.Render("Cancel"),
			"  ",
			s.ButtonFocused.Render("Confirm"),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
