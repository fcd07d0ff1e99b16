package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Listener wraps a callback so it can be registered and removed by identity.
// Registering the same listener twice delivers every event to it twice.
type Listener[T any] struct {
	fn func(T)
}

// NewListener creates a listener for fn
func NewListener[T any](fn func(T)) *Listener[T] {
	return &Listener[T]{fn: fn}
}

// Bus is a synchronous publish/subscribe registry keyed by event type.
type Bus[T any] struct {
	listeners map[EventType][]*Listener[T]
	mu        sync.RWMutex
	logger    zerolog.Logger
}

// BusOption configures a Bus
type BusOption[T any] func(*Bus[T])

// WithBusLogger sets the logger used to report panicking listeners
func WithBusLogger[T any](logger zerolog.Logger) BusOption[T] {
	return func(b *Bus[T]) {
		b.logger = logger
	}
}

// NewBus creates a new event bus
func NewBus[T any](opts ...BusOption[T]) *Bus[T] {
	b := &Bus[T]{
		listeners: make(map[EventType][]*Listener[T]),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On registers a listener for an event type
func (b *Bus[T]) On(eventType EventType, l *Listener[T]) {
	if l == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], l)
}

// Emit delivers payload to every listener registered for eventType, in
// registration order, on the calling goroutine. Listeners registered or
// removed while an emission is running only affect later emissions.
//
// A panicking listener does not stop delivery to the listeners after it:
// the panic is recovered, logged and returned as part of the joined error.
func (b *Bus[T]) Emit(eventType EventType, payload T) error {
	b.mu.RLock()
	bucket, ok := b.listeners[eventType]
	if !ok {
		b.mu.RUnlock()
		return nil
	}
	snapshot := make([]*Listener[T], len(bucket))
	copy(snapshot, bucket)
	b.mu.RUnlock()

	var errs []error
	for i, l := range snapshot {
		if err := b.deliver(l, payload); err != nil {
			b.logger.Error().
				Err(err).
				Str("event", string(eventType)).
				Int("listener", i).
				Msg("listener panicked")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RemoveListener removes every registration of l for eventType.
func (b *Bus[T]) RemoveListener(eventType EventType, l *Listener[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bucket, ok := b.listeners[eventType]
	if !ok {
		return
	}

	kept := bucket[:0:0]
	for _, existing := range bucket {
		if existing != l {
			kept = append(kept, existing)
		}
	}

	// Clean up empty buckets
	if len(kept) == 0 {
		delete(b.listeners, eventType)
		return
	}
	b.listeners[eventType] = kept
}

// ListenerCount returns how many registrations exist for eventType
func (b *Bus[T]) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = make(map[EventType][]*Listener[T])
}

func (b *Bus[T]) deliver(l *Listener[T], payload T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, r)
		}
	}()
	l.fn(payload)
	return nil
}
