package events

import "errors"

// EventType identifies the type of event
type EventType string

const (
	// DialogEvent carries a new dialog request from openers to the mounted host.
	DialogEvent EventType = "dialog"
)

// ErrListenerPanic wraps a value recovered from a panicking listener.
var ErrListenerPanic = errors.New("event listener panicked")
