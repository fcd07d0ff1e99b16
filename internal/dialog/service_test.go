package dialog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/billie-coop/showcase/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// fakeHost accepts every request and keeps it for the test to resolve.
type fakeHost struct {
	mu       sync.Mutex
	requests []*Request
}

func mountFakeHost(bus *events.Bus[*Request]) (*fakeHost, *events.Listener[*Request]) {
	h := &fakeHost{}
	l := events.NewListener(func(req *Request) {
		if req == nil {
			return
		}
		req.Accept()
		h.mu.Lock()
		h.requests = append(h.requests, req)
		h.mu.Unlock()
	})
	bus.On(events.DialogEvent, l)
	return h, l
}

func (h *fakeHost) get(i int) *Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requests[i]
}

type nopBody struct{}

func (nopBody) Init() tea.Cmd { return nil }

func (b nopBody) Update(tea.Msg) (Body, tea.Cmd) { return b, nil }

func (nopBody) View() string { return "" }

func nopFactory(Resolver) Body { return nopBody{} }

func settled[T any](t *testing.T, p *Pending[T]) (T, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, ok, err := p.Await(ctx)
	require.NoError(t, err)
	return v, ok
}

func requireUnsettled[T any](t *testing.T, p *Pending[T]) {
	t.Helper()
	select {
	case <-p.Done():
		t.Fatalf("pending %s settled unexpectedly", p.ID())
	default:
	}
}

func TestOpen_PublishesRequest(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus, WithIDGenerator(func() string { return "req-1" }))

	p := Open[bool](svc, nopFactory,
		WithKind("confirm"),
		WithStyleClass("destructive"),
		WithContainer(ContainerOptions{DisableDismiss: true, Width: 40}),
		WithContent(ContentOptions{PaddingX: 2}),
	)

	require.Equal(t, "req-1", p.ID())
	req := host.get(0)
	require.Equal(t, "req-1", req.ID)
	require.Equal(t, "confirm", req.Kind)
	require.Equal(t, "destructive", req.Options.StyleClass)
	require.True(t, req.Options.Container.DisableDismiss)
	require.Equal(t, 40, req.Options.Container.Width)
	require.Equal(t, 2, req.Options.Content.PaddingX)
	require.NotNil(t, req.Body)
	require.Equal(t, 1, svc.Pending())
	requireUnsettled(t, p)
}

func TestOpen_DefaultIDsAreUnique(t *testing.T) {
	bus := events.NewBus[*Request]()
	mountFakeHost(bus)
	svc := NewService(bus)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := svc.Open(nopFactory)
		require.False(t, seen[p.ID()], "duplicate id %s", p.ID())
		seen[p.ID()] = true
	}
}

func TestOpen_ExactlyOnceResolution(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus)

	p := Open[string](svc, nopFactory)
	req := host.get(0)

	require.True(t, req.Resolve("first"))
	require.False(t, req.Resolve("second"))
	require.False(t, req.Cancel())

	v, ok := settled(t, p)
	require.True(t, ok)
	require.Equal(t, "first", v)
	require.Equal(t, 0, svc.Pending())
}

func TestOpen_ConcurrentResolversRace(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus)

	p := Open[int](svc, nopFactory)
	req := host.get(0)

	var wg sync.WaitGroup
	wins := make(chan int, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if req.Resolve(i) {
				wins <- i
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []int
	for w := range wins {
		winners = append(winners, w)
	}
	require.Len(t, winners, 1)

	v, ok := settled(t, p)
	require.True(t, ok)
	require.Equal(t, winners[0], v)
}

func TestOpen_IndependentConcurrentDialogs(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus)

	const n = 8
	pendings := make([]*Pending[string], n)
	for i := range pendings {
		pendings[i] = Open[string](svc, nopFactory)
	}

	order := rand.Perm(n)
	for _, i := range order {
		require.True(t, host.get(i).Resolve(fmt.Sprintf("answer-%d", i)))
	}

	for i, p := range pendings {
		v, ok := settled(t, p)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("answer-%d", i), v)
		require.Equal(t, host.get(i).ID, p.ID())
	}
}

func TestOpen_CancelAndTypeMismatch(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus)

	cancelled := Open[bool](svc, nopFactory)
	mismatched := Open[bool](svc, nopFactory)

	require.True(t, host.get(0).Cancel())
	require.True(t, host.get(1).Resolve("not a bool"))

	v, ok := settled(t, cancelled)
	require.False(t, ok)
	require.False(t, v)

	v, ok = settled(t, mismatched)
	require.False(t, ok)
	require.False(t, v)
}

func TestOpen_NoHost(t *testing.T) {
	t.Run("silent drop leaves result unsettled", func(t *testing.T) {
		bus := events.NewBus[*Request]()
		svc := NewService(bus)

		var p *Pending[bool]
		require.NotPanics(t, func() {
			p = Open[bool](svc, nopFactory)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, ok, err := p.Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.False(t, ok)
		requireUnsettled(t, p)
		require.Equal(t, 0, svc.Pending())
	})

	t.Run("strict host fails fast", func(t *testing.T) {
		bus := events.NewBus[*Request]()
		svc := NewService(bus, WithStrictHost(true))

		p := Open[bool](svc, nopFactory)
		_, ok, err := p.Await(context.Background())
		require.ErrorIs(t, err, ErrNoHost)
		require.False(t, ok)
		require.ErrorIs(t, p.Err(), ErrNoHost)
	})

	t.Run("unmounted host drops later requests", func(t *testing.T) {
		bus := events.NewBus[*Request]()
		_, l := mountFakeHost(bus)
		bus.RemoveListener(events.DialogEvent, l)
		svc := NewService(bus)

		p := Open[bool](svc, nopFactory)
		requireUnsettled(t, p)
	})
}

func TestOpen_NilRequestListenersIgnored(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	require.NoError(t, bus.Emit(events.DialogEvent, nil))
	require.Empty(t, host.requests)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus, WithMetrics(metrics))

	Open[bool](svc, nopFactory, WithKind("confirm"))
	Open[bool](svc, nopFactory, WithKind("confirm"))
	Open[string](svc, nopFactory)

	require.Equal(t, 2.0, testutil.ToFloat64(metrics.opened.WithLabelValues("confirm")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.opened.WithLabelValues(KindCustom)))
	require.Equal(t, 3.0, testutil.ToFloat64(metrics.pending))

	host.get(0).Resolve(true)
	host.get(1).Cancel()
	host.get(1).Cancel()

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.resolved.WithLabelValues("confirm", "value")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.resolved.WithLabelValues("confirm", "cancel")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.pending))

	orphan := NewService(events.NewBus[*Request](), WithMetrics(metrics))
	Open[bool](orphan, nopFactory, WithKind("input"))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.dropped.WithLabelValues("input")))
}

func TestAwaitCmd(t *testing.T) {
	bus := events.NewBus[*Request]()
	host, _ := mountFakeHost(bus)
	svc := NewService(bus)

	type answerMsg struct {
		value bool
		ok    bool
	}
	p := Open[bool](svc, nopFactory)
	cmd := AwaitCmd(context.Background(), p, func(v bool, ok bool, err error) tea.Msg {
		require.NoError(t, err)
		return answerMsg{v, ok}
	})

	go host.get(0).Resolve(true)
	require.Equal(t, answerMsg{true, true}, cmd())
}

func TestPending_ResultBeforeSettle(t *testing.T) {
	p := newPending[int]("x")
	v, ok := p.Result()
	require.False(t, ok)
	require.Zero(t, v)
	require.NoError(t, p.Err())

	require.True(t, p.settle(7, true, nil))
	require.False(t, p.settle(8, true, nil))
	v, ok = p.Result()
	require.True(t, ok)
	require.Equal(t, 7, v)
}
