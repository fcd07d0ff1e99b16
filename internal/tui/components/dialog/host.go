// Package dialog renders dialogs opened through the dialog service and
// provides the built-in confirm, input, select and progress bodies.
package dialog

import (
	"sync"

	"github.com/billie-coop/showcase/internal/csync"
	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/components/core"
	"github.com/billie-coop/showcase/internal/tui/events"
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"
)

// Sender delivers a message into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// requestMsg carries a request from the bus listener into the program loop.
type requestMsg struct {
	req *dialog.Request
}

// resolvedMsg is produced by a body's resolver.
type resolvedMsg struct {
	ID    string
	Value any
}

// routedMsg tags a message produced by a body's command with the body's
// request id so it finds its way back to that body.
type routedMsg struct {
	ID  string
	Msg tea.Msg
}

type entry struct {
	req  *dialog.Request
	body dialog.Body
}

// Host renders every open dialog on top of the application and turns body
// results into request resolutions. Exactly one host should be mounted per
// program.
type Host struct {
	core.SizeableBase

	bus  *events.Bus[*dialog.Request]
	open *csync.Slice[*entry]
	// accepted requests that have not been resolved yet, delivered or not
	live *csync.Map[string, *dialog.Request]

	keys   KeyMap
	help   help.Model
	logger zerolog.Logger

	mu    sync.Mutex
	mount *Mount
}

var _ core.Sizeable = (*Host)(nil)

// HostOption configures a Host
type HostOption func(*Host)

// WithHostLogger sets the host logger
func WithHostLogger(logger zerolog.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(keys KeyMap) HostOption {
	return func(h *Host) {
		h.keys = keys
	}
}

// NewHost creates a host listening on bus once mounted
func NewHost(bus *events.Bus[*dialog.Request], opts ...HostOption) *Host {
	h := &Host{
		bus:    bus,
		open:   csync.NewSlice[*entry](),
		live:   csync.NewMap[string, *dialog.Request](),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount is an active subscription of a host to the dialog bus.
type Mount struct {
	host     *Host
	listener *events.Listener[*dialog.Request]

	mu     sync.Mutex
	closed bool
}

// Mount subscribes the host to dialog requests and forwards them to sender.
// It fails with dialog.ErrAlreadyMounted while another mount is active.
func (h *Host) Mount(sender Sender) (*Mount, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mount != nil {
		return nil, dialog.ErrAlreadyMounted
	}

	m := &Mount{host: h}
	m.listener = events.NewListener(func(req *dialog.Request) {
		if req == nil || !m.track(req) {
			return
		}
		sender.Send(requestMsg{req: req})
	})
	h.bus.On(events.DialogEvent, m.listener)
	h.mount = m

	h.logger.Debug().Msg("dialog host mounted")
	return m, nil
}

func (m *Mount) track(req *dialog.Request) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	req.Accept()
	m.host.live.Set(req.ID, req)
	return true
}

// Unmount stops listening, drops every open body and cancels every request
// that has not been answered. Call it after the program has stopped. It is
// safe to call more than once.
func (m *Mount) Unmount() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	h := m.host
	h.bus.RemoveListener(events.DialogEvent, m.listener)

	for _, e := range h.open.Clear() {
		closeBody(e.body)
	}

	cancelled := 0
	for _, id := range h.live.Keys() {
		if req, ok := h.live.Take(id); ok && req.Cancel() {
			cancelled++
		}
	}

	h.mu.Lock()
	if h.mount == m {
		h.mount = nil
	}
	h.mu.Unlock()

	h.logger.Debug().Int("cancelled", cancelled).Msg("dialog host unmounted")
}

// Len returns how many dialogs are open
func (h *Host) Len() int {
	return h.open.Len()
}

// IDs returns the ids of the open dialogs, oldest first
func (h *Host) IDs() []string {
	entries := h.open.ToSlice()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.req.ID
	}
	return ids
}

// Init initializes the host
func (h *Host) Init() tea.Cmd {
	return nil
}

// Update handles dialog traffic. Key presses only reach the top dialog.
func (h *Host) Update(msg tea.Msg) (*Host, tea.Cmd) {
	switch msg := msg.(type) {
	case requestMsg:
		return h, h.push(msg.req)

	case resolvedMsg:
		h.resolve(msg.ID, msg.Value)
		return h, nil

	case routedMsg:
		e, ok := h.find(msg.ID)
		if !ok {
			// The body is gone; late timer and spinner ticks end here
			return h, nil
		}
		return h, h.updateEntry(e, msg.Msg)

	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, msg.Height)
		var cmds []tea.Cmd
		for _, e := range h.open.ToSlice() {
			cmds = append(cmds, h.updateEntry(e, msg))
		}
		return h, tea.Batch(cmds...)

	case tea.KeyPressMsg:
		top, ok := h.open.Last()
		if !ok {
			return h, nil
		}
		if key.Matches(msg, h.keys.Dismiss) {
			if !top.req.Options.Container.DisableDismiss {
				h.resolve(top.req.ID, nil)
			}
			return h, nil
		}
		return h, h.updateEntry(top, msg)

	case tea.PasteMsg:
		if top, ok := h.open.Last(); ok {
			return h, h.updateEntry(top, msg)
		}
	}
	return h, nil
}

func (h *Host) push(req *dialog.Request) tea.Cmd {
	logger := h.logger.With().Str("dialog_id", req.ID).Str("kind", req.Kind).Logger()

	if _, ok := h.find(req.ID); ok {
		logger.Warn().Msg("dialog already open, ignoring duplicate request")
		return nil
	}
	if _, ok := h.live.Get(req.ID); !ok {
		logger.Debug().Msg("dialog resolved before it was shown")
		return nil
	}
	if req.Body == nil {
		logger.Warn().Msg("dialog request has no body, cancelling")
		h.live.Delete(req.ID)
		req.Cancel()
		return nil
	}

	e := &entry{req: req}
	e.body = req.Body(h.resolver(req.ID))
	h.open.Append(e)
	logger.Debug().Int("open", h.open.Len()).Msg("dialog shown")

	cmds := []tea.Cmd{route(req.ID, e.body.Init())}
	if h.Width > 0 || h.Height > 0 {
		cmds = append(cmds, h.updateEntry(e, tea.WindowSizeMsg{Width: h.Width, Height: h.Height}))
	}
	return tea.Batch(cmds...)
}

// resolve removes the dialog, tears its body down and completes its request.
// Resolutions for dialogs that are no longer open are ignored.
func (h *Host) resolve(id string, value any) {
	e, ok := h.open.RemoveFirst(func(e *entry) bool {
		return e.req.ID == id
	})
	if !ok {
		h.logger.Debug().Str("dialog_id", id).Msg("resolution for closed dialog ignored")
		return
	}
	closeBody(e.body)
	h.live.Delete(id)
	e.req.Resolve(value)

	h.logger.Debug().
		Str("dialog_id", id).
		Str("kind", e.req.Kind).
		Bool("cancelled", value == nil).
		Int("open", h.open.Len()).
		Msg("dialog closed")
}

func (h *Host) find(id string) (*entry, bool) {
	return h.open.Find(func(e *entry) bool {
		return e.req.ID == id
	})
}

func (h *Host) updateEntry(e *entry, msg tea.Msg) tea.Cmd {
	body, cmd := e.body.Update(msg)
	if body != nil {
		e.body = body
	}
	return route(e.req.ID, cmd)
}

func (h *Host) resolver(id string) dialog.Resolver {
	return func(value any) tea.Cmd {
		return func() tea.Msg {
			return resolvedMsg{ID: id, Value: value}
		}
	}
}

// route wraps cmd so that the message it produces is delivered back to the
// body that issued it.
func route(id string, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return tag(id, cmd())
	}
}

func tag(id string, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case nil:
		return nil
	case resolvedMsg, tea.QuitMsg:
		return msg
	case tea.BatchMsg:
		cmds := make(tea.BatchMsg, 0, len(msg))
		for _, cmd := range msg {
			if cmd != nil {
				cmds = append(cmds, route(id, cmd))
			}
		}
		return cmds
	default:
		return routedMsg{ID: id, Msg: msg}
	}
}

func closeBody(body dialog.Body) {
	if c, ok := body.(dialog.Closer); ok {
		c.Close()
	}
}
