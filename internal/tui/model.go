// Package tui is the interactive dialog demo.
package tui

import (
	"context"
	"fmt"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/search"
	dlg "github.com/billie-coop/showcase/internal/tui/components/dialog"
	"github.com/billie-coop/showcase/internal/tui/components/status"
	"github.com/billie-coop/showcase/internal/tui/events"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Deps are the collaborators of the demo
type Deps struct {
	Bus      *events.Bus[*dialog.Request]
	Service  *dialog.Service
	Searcher search.Searcher
	Logger   zerolog.Logger

	// Loading configures the loading dialog. Title and Message are filled in
	// by the demo.
	Loading  dlg.ProgressProps
	PageSize int
}

// toastMsg carries the outcome of a dialog to the status line.
type toastMsg struct {
	kind status.MessageType
	text string
}

const headerHeight = 2

// Model is the demo screen: a scrollable usage guide with dialogs opened on
// top of it.
type Model struct {
	width  int
	height int

	ctx    context.Context
	deps   Deps
	logger zerolog.Logger

	host   *dlg.Host
	status *status.Component
	docs   viewport.Model
	keys   KeyMap
	help   help.Model
}

// New creates the demo model. The host it owns still has to be mounted; see
// Run.
func New(ctx context.Context, deps Deps) *Model {
	if deps.PageSize <= 0 {
		deps.PageSize = search.DefaultPageSize
	}

	m := &Model{
		ctx:    ctx,
		deps:   deps,
		logger: deps.Logger,
		host:   dlg.NewHost(deps.Bus, dlg.WithHostLogger(deps.Logger)),
		status: status.New(),
		docs:   viewport.New(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.status.SetLeftContent("press a key to open a dialog")
	return m
}

// Host returns the dialog host rendered by the model
func (m *Model) Host() *dlg.Host {
	return m.host
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.host.Init()
}

// Update routes messages to the dialog host first. While a dialog is open
// it receives every key press.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	dialogOpen := m.host.Len() > 0

	var cmd tea.Cmd
	m.host, cmd = m.host.Update(msg)
	cmds = append(cmds, cmd)

	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case toastMsg:
		m.logger.Debug().Str("toast", msg.text).Msg("dialog outcome")
		cmds = append(cmds, m.status.SetMessage(msg.text, msg.kind))

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if dialogOpen {
			return m, tea.Batch(cmds...)
		}
		if action := m.action(msg); action != nil {
			cmds = append(cmds, action)
			return m, tea.Batch(cmds...)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.docs, cmd = m.docs.Update(msg)
		cmds = append(cmds, cmd)

	case tea.MouseWheelMsg:
		if m.host.Len() == 0 {
			m.docs, cmd = m.docs.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) resize() {
	docsHeight := max(1, m.height-headerHeight-1)
	m.docs = viewport.New(
		viewport.WithWidth(m.width),
		viewport.WithHeight(docsHeight),
	)
	m.docs.MouseWheelEnabled = true
	m.docs.SetContent(styles.RenderMarkdown(page, m.width))
	m.status.SetSize(m.width, 1)
}

// View implements tea.Model
func (m *Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Render draws the guide and overlays the open dialogs
func (m *Model) Render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderThemeGradient("showcase · dialogs", true),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	base := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.docs.View(),
		m.status.View(),
	)
	return m.host.View(base)
}

// action maps a key to the command opening its dialog
func (m *Model) action(msg tea.KeyPressMsg) tea.Cmd {
	svc := m.deps.Service
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return open(m.ctx, func() *dialog.Pending[bool] {
			return dlg.Confirm(svc, "Are you sure?", "Do you want to continue with this action?", dlg.ConfirmOptions{})
		}, func(ok bool) toastMsg {
			if ok {
				return toastMsg{status.Success, "Confirmed"}
			}
			return toastMsg{status.Info, "Cancelled"}
		})

	case key.Matches(msg, m.keys.Destructive):
		return open(m.ctx, func() *dialog.Pending[bool] {
			return dlg.Confirm(svc, "Delete item?", "This action cannot be undone.", dlg.ConfirmOptions{
				ConfirmText: "Delete",
				Variant:     dlg.VariantDestructive,
			})
		}, func(ok bool) toastMsg {
			if ok {
				return toastMsg{status.Success, "Deleted"}
			}
			return toastMsg{status.Info, "Cancelled"}
		})

	case key.Matches(msg, m.keys.Input):
		return open(m.ctx, func() *dialog.Pending[string] {
			return dlg.Input(svc, "Enter a value", "Type something...", "default value")
		}, savedToast)

	case key.Matches(msg, m.keys.Select):
		return open(m.ctx, func() *dialog.Pending[string] {
			options := demoOptions()
			return dlg.Select(svc, "Choose an option", options, &options[0].Value)
		}, func(v string) toastMsg {
			return selectedToast(v, true)
		})

	case key.Matches(msg, m.keys.Loading):
		return open(m.ctx, func() *dialog.Pending[bool] {
			props := m.deps.Loading
			props.Title = "Processing"
			props.Message = "Please wait while the operation completes"
			return dlg.LoadingWith(svc, props)
		}, func(ok bool) toastMsg {
			if ok {
				return toastMsg{status.Success, "Operation succeeded"}
			}
			return toastMsg{status.Error, "Operation failed"}
		})

	case key.Matches(msg, m.keys.Stacked):
		return m.stacked()

	case key.Matches(msg, m.keys.Lookup):
		if m.deps.Searcher == nil {
			return func() tea.Msg {
				return toastMsg{status.Warning, "User search is not configured"}
			}
		}
		return open(m.ctx, func() *dialog.Pending[search.Item] {
			return dlg.Lookup(svc, "Find a user", m.deps.Searcher, m.deps.PageSize)
		}, func(item search.Item) toastMsg {
			return toastMsg{status.Success, fmt.Sprintf("Selected: %s (#%s)", item.Label, item.Value)}
		})
	}
	return nil
}

// stacked opens a select and a confirm on top of it at once. Each answer
// produces its own toast.
func (m *Model) stacked() tea.Cmd {
	svc := m.deps.Service
	return func() tea.Msg {
		options := demoOptions()
		sel := dlg.Select(svc, "Choose an option", options, nil)
		conf := dlg.Confirm(svc, "Stacked dialog", "This confirm opened on top of a select. Answer it first.", dlg.ConfirmOptions{})

		return tea.BatchMsg{
			dialog.AwaitCmd(m.ctx, conf, func(ok bool, answered bool, err error) tea.Msg {
				if err != nil {
					return toastMsg{status.Error, err.Error()}
				}
				if ok && answered {
					return toastMsg{status.Success, "Confirmed"}
				}
				return toastMsg{status.Info, "Cancelled"}
			}),
			dialog.AwaitCmd(m.ctx, sel, func(v string, ok bool, err error) tea.Msg {
				if err != nil {
					return toastMsg{status.Error, err.Error()}
				}
				return selectedToast(v, ok)
			}),
		}
	}
}

// open runs opener off the update loop, since opening a dialog hands the
// request to the running program, and turns the answer into a toast.
func open[T any](ctx context.Context, opener func() *dialog.Pending[T], toast func(T) toastMsg) tea.Cmd {
	return func() tea.Msg {
		p := opener()
		return dialog.AwaitCmd(ctx, p, func(v T, ok bool, err error) tea.Msg {
			switch {
			case err != nil:
				return toastMsg{status.Error, err.Error()}
			case !ok:
				return toastMsg{status.Info, "Cancelled"}
			default:
				return toast(v)
			}
		})()
	}
}

func savedToast(v string) toastMsg {
	return toastMsg{status.Success, "Saved: " + v}
}

func selectedToast(v string, ok bool) toastMsg {
	if !ok {
		return toastMsg{status.Info, "Cancelled"}
	}
	return toastMsg{status.Success, "Selected: " + v}
}

func demoOptions() []dlg.Option[string] {
	return []dlg.Option[string]{
		{Label: "Option 1", Value: "option1"},
		{Label: "Option 2", Value: "option2"},
		{Label: "Option 3", Value: "option3"},
	}
}
