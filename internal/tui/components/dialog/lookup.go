package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/search"
	"github.com/billie-coop/showcase/internal/tui/components/core"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const (
	DefaultLookupDebounce = 300 * time.Millisecond
	DefaultLookupRows     = 6

	// fetch the next page when the cursor gets this close to the end
	lookupPrefetch = 2
)

// ListKeyMap moves through a result list while the search box keeps focus,
// so none of its keys produce text.
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultListKeyMap returns the default key bindings for list navigation
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
	}
}

// LookupProps configure a searchable picker
type LookupProps struct {
	Title       string
	Placeholder string
	Searcher    search.Searcher
	PageSize    int
	// Debounce is how long typing must pause before a new search starts
	Debounce time.Duration
	// Rows is the number of visible results
	Rows int
}

// lookupPageMsg reports a finished fetch for search generation seq.
type lookupPageMsg struct {
	seq int
	err error
}

// LookupBody searches as the user types and loads more results as the
// cursor nears the end of the list. It resolves with the chosen search.Item.
type LookupBody struct {
	props   LookupProps
	resolve dialog.Resolver
	keys    KeyMap
	list    ListKeyMap

	ctx    context.Context
	cancel context.CancelFunc

	input    textinput.Model
	focus    tea.Cmd
	spinner  spinner.Model
	debounce *core.Timer

	cursor  *search.Cursor
	seq     int
	loading bool
	err     error
	items   []search.Item
	index   int
	offset  int
}

var _ dialog.Body = (*LookupBody)(nil)

// NewLookup returns a factory for a searchable picker
func NewLookup(props LookupProps) dialog.Factory {
	if props.PageSize <= 0 {
		props.PageSize = search.DefaultPageSize
	}
	if props.Debounce <= 0 {
		props.Debounce = DefaultLookupDebounce
	}
	if props.Rows <= 0 {
		props.Rows = DefaultLookupRows
	}

	return func(resolve dialog.Resolver) dialog.Body {
		ti := textinput.New()
		ti.Prompt = "⌕ "
		ti.Placeholder = props.Placeholder
		ti.CharLimit = inputCharLimit

		ctx, cancel := context.WithCancel(context.Background())
		d := &LookupBody{
			props:    props,
			resolve:  resolve,
			keys:     DefaultKeyMap(),
			list:     DefaultListKeyMap(),
			ctx:      ctx,
			cancel:   cancel,
			input:    ti,
			spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
			debounce: core.NewTimer("debounce"),
		}
		d.focus = d.input.Focus()
		return d
	}
}

// Init focuses the search box and loads the first page of results
func (d *LookupBody) Init() tea.Cmd {
	return tea.Batch(d.focus, d.spinner.Tick, d.restart())
}

// Update handles messages
func (d *LookupBody) Update(msg tea.Msg) (dialog.Body, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupPageMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.loading = false
		d.err = msg.err
		d.items = d.cursor.Items()
		d.clamp()
		return d, nil

	case core.TimerFiredMsg:
		if d.debounce.Fired(msg) {
			return d, d.restart()
		}
		return d, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, d.keys.Submit):
			if len(d.items) == 0 {
				return d, nil
			}
			return d, d.resolve(d.items[d.index])
		case key.Matches(msg, d.keys.Cancel):
			return d, d.resolve(nil)
		case key.Matches(msg, d.list.Up):
			return d, d.move(-1)
		case key.Matches(msg, d.list.Down):
			return d, d.move(1)
		case key.Matches(msg, d.list.PageUp):
			return d, d.move(-d.props.Rows)
		case key.Matches(msg, d.list.PageDown):
			return d, d.move(d.props.Rows)
		case key.Matches(msg, d.list.Home):
			return d, d.move(-len(d.items))
		case key.Matches(msg, d.list.End):
			return d, d.move(len(d.items))
		}
	}

	before := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if d.input.Value() != before {
		return d, tea.Batch(cmd, d.debounce.Start(d.props.Debounce))
	}
	return d, cmd
}

// restart begins a new search for the current term. Results of older
// searches still in flight are discarded when they arrive.
func (d *LookupBody) restart() tea.Cmd {
	d.debounce.Stop()
	d.seq++
	d.cursor = search.NewCursor(d.props.Searcher, strings.TrimSpace(d.input.Value()), d.props.PageSize)
	d.items = nil
	d.index = 0
	d.offset = 0
	d.err = nil
	d.loading = false
	return d.fetch()
}

func (d *LookupBody) fetch() tea.Cmd {
	if d.props.Searcher == nil || d.loading || !d.cursor.HasMore() {
		return nil
	}
	d.loading = true
	ctx, cursor, seq := d.ctx, d.cursor, d.seq
	return func() tea.Msg {
		_, err := cursor.Next(ctx)
		return lookupPageMsg{seq: seq, err: err}
	}
}

func (d *LookupBody) move(delta int) tea.Cmd {
	if len(d.items) == 0 {
		return nil
	}
	d.index = max(0, min(d.index+delta, len(d.items)-1))
	d.clamp()
	if d.index >= len(d.items)-1-lookupPrefetch {
		return d.fetch()
	}
	return nil
}

// clamp keeps the cursor inside the items and the visible window around it
func (d *LookupBody) clamp() {
	if d.index >= len(d.items) {
		d.index = max(0, len(d.items)-1)
	}
	if d.index < d.offset {
		d.offset = d.index
	}
	if d.index >= d.offset+d.props.Rows {
		d.offset = d.index - d.props.Rows + 1
	}
}

// Close stops any search still running
func (d *LookupBody) Close() {
	d.debounce.Stop()
	d.cancel()
}

// Items returns the results loaded so far
func (d *LookupBody) Items() []search.Item {
	return append([]search.Item(nil), d.items...)
}

// Highlighted returns the item under the cursor
func (d *LookupBody) Highlighted() (search.Item, bool) {
	if len(d.items) == 0 {
		return search.Item{}, false
	}
	return d.items[d.index], true
}

// Loading reports whether a fetch is in flight
func (d *LookupBody) Loading() bool {
	return d.loading
}

// Err returns the error of the last fetch
func (d *LookupBody) Err() error {
	return d.err
}

// ShortHelp returns the bindings shown under the dialog
func (d *LookupBody) ShortHelp() []key.Binding {
	return []key.Binding{d.list.Up, d.list.Down, d.keys.Submit, d.keys.Cancel}
}

// View renders the dialog
func (d *LookupBody) View() string {
	s := styles.CurrentTheme().S()

	parts := []string{
		s.Title.Render(d.props.Title),
		"",
		s.InputLine.Render(d.input.View()),
		"",
	}

	end := min(d.offset+d.props.Rows, len(d.items))
	for i := d.offset; i < end; i++ {
		label := d.items[i].Label
		if i == d.index {
			parts = append(parts, s.OptionCursor.Render(styles.Pointer+" "+label))
			continue
		}
		parts = append(parts, s.Option.Render("  "+label))
	}
	for i := end - d.offset; i < d.props.Rows; i++ {
		parts = append(parts, "")
	}

	parts = append(parts, "", d.status(s))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (d *LookupBody) status(s *styles.Styles) string {
	switch {
	case d.loading:
		return s.Muted.Render(d.spinner.View() + " Searching...")
	case d.err != nil:
		return s.Error.Render(styles.ErrorIcon + " Search failed: " + d.err.Error())
	case len(d.items) == 0:
		return s.Muted.Render("No results")
	default:
		return s.Subtle.Render(fmt.Sprintf("%d of %d", d.index+1, d.cursor.Total()))
	}
}
