package dialog

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Pending is the eventual result of an opened dialog. It settles at most once.
type Pending[T any] struct {
	id   string
	done chan struct{}
	once sync.Once

	value T
	ok    bool
	err   error
}

func newPending[T any](id string) *Pending[T] {
	return &Pending[T]{
		id:   id,
		done: make(chan struct{}),
	}
}

// ID returns the id of the request behind this result
func (p *Pending[T]) ID() string {
	return p.id
}

// Done is closed once the result has settled
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Result returns the settled value. ok is false when the dialog was cancelled
// or has not settled yet.
func (p *Pending[T]) Result() (T, bool) {
	select {
	case <-p.done:
		return p.value, p.ok
	default:
		var zero T
		return zero, false
	}
}

// Err returns the failure the result settled with, if any
func (p *Pending[T]) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Await blocks until the dialog is resolved or ctx is done. Giving up on the
// wait leaves the dialog open.
func (p *Pending[T]) Await(ctx context.Context) (T, bool, error) {
	select {
	case <-p.done:
		return p.value, p.ok, p.err
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (p *Pending[T]) settle(value T, ok bool, err error) bool {
	settled := false
	p.once.Do(func() {
		p.value = value
		p.ok = ok
		p.err = err
		settled = true
		close(p.done)
	})
	return settled
}

// AwaitCmd waits for p inside a Bubble Tea command and turns the outcome into
// a message.
func AwaitCmd[T any](ctx context.Context, p *Pending[T], fn func(value T, ok bool, err error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		value, ok, err := p.Await(ctx)
		return fn(value, ok, err)
	}
}
