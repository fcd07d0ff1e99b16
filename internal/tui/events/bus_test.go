package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBus_FanOutOrder(t *testing.T) {
	bus := NewBus[string]()
	var calls []string

	l1 := NewListener(func(p string) { calls = append(calls, "l1:"+p) })
	l2 := NewListener(func(p string) { calls = append(calls, "l2:"+p) })
	l3 := NewListener(func(p string) { calls = append(calls, "l3:"+p) })
	bus.On(DialogEvent, l1)
	bus.On(DialogEvent, l2)
	bus.On(DialogEvent, l3)

	require.NoError(t, bus.Emit(DialogEvent, "x"))
	require.Equal(t, []string{"l1:x", "l2:x", "l3:x"}, calls)
}

func TestBus_EmitWithoutListeners(t *testing.T) {
	bus := NewBus[*int]()
	require.NoError(t, bus.Emit("nobody", nil))
	require.Equal(t, 0, bus.ListenerCount("nobody"))
}

func TestBus_NilPayloadIsDelivered(t *testing.T) {
	bus := NewBus[*int]()
	got := 0
	bus.On(DialogEvent, NewListener(func(p *int) {
		require.Nil(t, p)
		got++
	}))

	require.NoError(t, bus.Emit(DialogEvent, nil))
	require.Equal(t, 1, got)
}

func TestBus_DuplicateRegistration(t *testing.T) {
	bus := NewBus[int]()
	count := 0
	l := NewListener(func(int) { count++ })

	bus.On(DialogEvent, l)
	bus.On(DialogEvent, l)
	require.NoError(t, bus.Emit(DialogEvent, 1))
	require.Equal(t, 2, count)

	// Removal by identity drops both registrations
	bus.RemoveListener(DialogEvent, l)
	require.NoError(t, bus.Emit(DialogEvent, 1))
	require.Equal(t, 2, count)
	require.Equal(t, 0, bus.ListenerCount(DialogEvent))
}

func TestBus_RemoveListener(t *testing.T) {
	t.Run("keeps others in order", func(t *testing.T) {
		bus := NewBus[int]()
		var calls []string
		a := NewListener(func(int) { calls = append(calls, "a") })
		b := NewListener(func(int) { calls = append(calls, "b") })
		c := NewListener(func(int) { calls = append(calls, "c") })
		bus.On(DialogEvent, a)
		bus.On(DialogEvent, b)
		bus.On(DialogEvent, c)

		bus.RemoveListener(DialogEvent, b)
		require.NoError(t, bus.Emit(DialogEvent, 0))
		require.Equal(t, []string{"a", "c"}, calls)
	})

	t.Run("unknown event or listener", func(t *testing.T) {
		bus := NewBus[int]()
		a := NewListener(func(int) {})
		bus.RemoveListener("missing", a)

		bus.On(DialogEvent, a)
		bus.RemoveListener(DialogEvent, NewListener(func(int) {}))
		require.Equal(t, 1, bus.ListenerCount(DialogEvent))
	})

	t.Run("listener removing itself during emit", func(t *testing.T) {
		bus := NewBus[int]()
		count := 0
		var self *Listener[int]
		self = NewListener(func(int) {
			count++
			bus.RemoveListener(DialogEvent, self)
		})
		bus.On(DialogEvent, self)

		require.NoError(t, bus.Emit(DialogEvent, 0))
		require.NoError(t, bus.Emit(DialogEvent, 0))
		require.Equal(t, 1, count)
	})
}

func TestBus_PanickingListenerIsIsolated(t *testing.T) {
	bus := NewBus[int]()
	var calls []string
	bus.On(DialogEvent, NewListener(func(int) { calls = append(calls, "first") }))
	bus.On(DialogEvent, NewListener(func(int) { panic("boom") }))
	bus.On(DialogEvent, NewListener(func(int) { calls = append(calls, "last") }))

	err := bus.Emit(DialogEvent, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrListenerPanic))
	require.Contains(t, err.Error(), "boom")
	require.Equal(t, []string{"first", "last"}, calls)
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus[int]()
	bus.On(DialogEvent, NewListener(func(int) { t.Fatal("cleared listener called") }))
	bus.Clear()
	require.NoError(t, bus.Emit(DialogEvent, 0))
}
