package dialog

import (
	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Option is one choice in a select dialog
type Option[T comparable] struct {
	Label string
	Value T
}

// SelectProps configure a single select dialog
type SelectProps[T comparable] struct {
	Title        string
	Options      []Option[T]
	DefaultValue *T
}

// SelectBody asks for one of a fixed set of options. Confirm stays disabled
// until an option is chosen.
//
// The cursor walks the options first, then the Cancel and Confirm buttons.
type SelectBody[T comparable] struct {
	props   SelectProps[T]
	resolve dialog.Resolver
	keys    KeyMap

	cursor   int
	selected int // -1 when nothing is chosen
}

// NewSelect returns a factory for a single select dialog
func NewSelect[T comparable](props SelectProps[T]) dialog.Factory {
	return func(resolve dialog.Resolver) dialog.Body {
		d := &SelectBody[T]{
			props:    props,
			resolve:  resolve,
			keys:     DefaultKeyMap(),
			selected: -1,
		}
		if props.DefaultValue != nil {
			for i, opt := range props.Options {
				if opt.Value == *props.DefaultValue {
					d.selected = i
					d.cursor = i
					break
				}
			}
		}
		if len(props.Options) == 0 {
			d.cursor = d.cancelIndex()
		}
		return d
	}
}

func (d *SelectBody[T]) cancelIndex() int  { return len(d.props.Options) }
func (d *SelectBody[T]) confirmIndex() int { return len(d.props.Options) + 1 }

// Init initializes the dialog
func (d *SelectBody[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *SelectBody[T]) Update(msg tea.Msg) (dialog.Body, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	stops := d.confirmIndex() + 1
	switch {
	case key.Matches(keyMsg, d.keys.Up):
		d.cursor = max(0, d.cursor-1)
	case key.Matches(keyMsg, d.keys.Down):
		d.cursor = min(d.confirmIndex(), d.cursor+1)
	case key.Matches(keyMsg, d.keys.Next):
		d.cursor = (d.cursor + 1) % stops
	case key.Matches(keyMsg, d.keys.Previous):
		d.cursor = (d.cursor - 1 + stops) % stops
	case key.Matches(keyMsg, d.keys.Toggle):
		switch d.cursor {
		case d.cancelIndex():
			d.cursor = d.confirmIndex()
		case d.confirmIndex():
			d.cursor = d.cancelIndex()
		}
	case key.Matches(keyMsg, d.keys.Cancel):
		return d, d.resolve(nil)
	case key.Matches(keyMsg, d.keys.Choose):
		if d.cursor < len(d.props.Options) {
			d.selected = d.cursor
		}
	case key.Matches(keyMsg, d.keys.Submit):
		switch {
		case d.cursor < len(d.props.Options):
			d.selected = d.cursor
		case d.cursor == d.cancelIndex():
			return d, d.resolve(nil)
		default:
			if v, ok := d.Selected(); ok {
				return d, d.resolve(v)
			}
		}
	}
	return d, nil
}

// CanSubmit reports whether an option has been chosen
func (d *SelectBody[T]) CanSubmit() bool {
	return d.selected >= 0
}

// Selected returns the chosen option's value
func (d *SelectBody[T]) Selected() (T, bool) {
	if !d.CanSubmit() {
		var zero T
		return zero, false
	}
	return d.props.Options[d.selected].Value, true
}

// ShortHelp returns the bindings shown under the dialog
func (d *SelectBody[T]) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Up, d.keys.Down, d.keys.Choose, d.keys.Submit, d.keys.Cancel}
}

// View renders the dialog
func (d *SelectBody[T]) View() string {
	s := styles.CurrentTheme().S()

	parts := []string{s.Title.Render(d.props.Title), ""}
	for i, opt := range d.props.Options {
		radio := styles.RadioOff
		label := s.Text
		if i == d.selected {
			radio = styles.RadioOn
			label = s.OptionSelected
		}

		line := radio + " " + label.Render(opt.Label)
		if i == d.cursor {
			parts = append(parts, s.OptionCursor.Render(styles.Pointer+" ")+line)
		} else {
			parts = append(parts, s.Option.Render(line))
		}
	}

	cancel, confirm := s.Button, s.Button
	switch {
	case d.cursor == d.cancelIndex():
		cancel = s.ButtonFocused
	case !d.CanSubmit():
		confirm = s.ButtonDisabled
	case d.cursor == d.confirmIndex():
		confirm = s.ButtonFocused
	}
	parts = append(parts, "", lipgloss.JoinHorizontal(
		lipgloss.Center,
		cancel.Render("Cancel"),
		"  ",
		confirm.Render("Confirm"),
	))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
