package dialog

import "errors"

var (
	// ErrNoHost is reported by strict services when a dialog is opened while
	// no host is mounted.
	ErrNoHost = errors.New("dialog: no host mounted")

	// ErrAlreadyMounted is returned when a second host mount is attempted.
	ErrAlreadyMounted = errors.New("dialog: host already mounted")
)
