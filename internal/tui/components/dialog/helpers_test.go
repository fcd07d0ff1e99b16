package dialog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/components/core"
	"github.com/billie-coop/showcase/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

// programStub stands in for a running *tea.Program
type programStub struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (p *programStub) Send(msg tea.Msg) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
}

func (p *programStub) drain() []tea.Msg {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := p.msgs
	p.msgs = nil
	return msgs
}

type harness struct {
	t       *testing.T
	bus     *events.Bus[*dialog.Request]
	svc     *dialog.Service
	host    *Host
	mount   *Mount
	program *programStub
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	bus := events.NewBus[*dialog.Request]()
	host := NewHost(bus)
	program := &programStub{}
	mount, err := host.Mount(program)
	require.NoError(t, err)
	t.Cleanup(mount.Unmount)

	host.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return &harness{
		t:       t,
		bus:     bus,
		svc:     dialog.NewService(bus),
		host:    host,
		mount:   mount,
		program: program,
	}
}

// deliver hands queued requests to the host, as the program loop would, and
// returns the commands the host produced.
func (h *harness) deliver() []tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range h.program.drain() {
		_, cmd := h.host.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// press sends a key to the host and applies any resolution it triggers
func (h *harness) press(keys ...string) {
	for _, k := range keys {
		_, cmd := h.host.Update(keyPress(k))
		h.pump(cmd)
	}
}

// pump runs cmd and feeds resolutions and timer fires back into the host
// until nothing is left. Commands that block (cursor blinks, spinner
// frames) are abandoned.
func (h *harness) pump(cmds ...tea.Cmd) {
	for _, cmd := range cmds {
		for _, msg := range collect(cmd, 200*time.Millisecond) {
			switch m := msg.(type) {
			case resolvedMsg:
				h.host.Update(m)
			case routedMsg:
				if _, ok := m.Msg.(core.TimerFiredMsg); ok {
					_, next := h.host.Update(m)
					h.pump(next)
				}
			}
		}
	}
}

// collect runs cmd and returns the messages it produced within wait,
// expanding batches.
func collect(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()

	select {
	case msg := <-ch:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, collect(c, wait)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(wait):
		return nil
	}
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "ctrl+x":
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	default:
		r := []rune(k)[0]
		return tea.KeyPressMsg{Code: r, Text: k}
	}
}

func settled[T any](t *testing.T, p *dialog.Pending[T]) (T, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, ok, err := p.Await(ctx)
	require.NoError(t, err)
	return v, ok
}

func requireOpen[T any](t *testing.T, p *dialog.Pending[T]) {
	t.Helper()
	select {
	case <-p.Done():
		t.Fatalf("dialog %s settled unexpectedly", p.ID())
	default:
	}
}

// newBody builds a body from factory with a resolver that records results
func newBody(factory dialog.Factory) (dialog.Body, *[]any) {
	var results []any
	body := factory(func(v any) tea.Cmd {
		results = append(results, v)
		return func() tea.Msg { return resolvedMsg{Value: v} }
	})
	return body, &results
}

func update(body dialog.Body, keys ...string) dialog.Body {
	for _, k := range keys {
		body, _ = body.Update(keyPress(k))
	}
	return body
}
