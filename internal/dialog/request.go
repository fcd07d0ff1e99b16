package dialog

import "sync/atomic"

// ContainerOptions configure the modal frame around a body.
type ContainerOptions struct {
	// DisableDismiss stops esc from closing the dialog without an answer.
	DisableDismiss bool
	// Width fixes the frame width; zero sizes it to the content.
	Width int
}

// ContentOptions configure the area the body is drawn in.
type ContentOptions struct {
	PaddingX int
	PaddingY int
	// HideHelp removes the key hint line under the body.
	HideHelp bool
}

// Options are presentation settings passed through to the host's renderer.
type Options struct {
	Container  ContainerOptions
	Content    ContentOptions
	StyleClass string
}

// Request is one open invocation of the dialog system.
type Request struct {
	ID      string
	Kind    string
	Body    Factory
	Options Options

	resolve  func(any) bool
	accepted atomic.Bool
}

// Resolve completes the request with value, nil meaning cancelled. It reports
// whether this call was the one that completed it.
func (r *Request) Resolve(value any) bool {
	if r.resolve == nil {
		return false
	}
	return r.resolve(value)
}

// Cancel resolves the request with the cancel sentinel.
func (r *Request) Cancel() bool {
	return r.Resolve(nil)
}

// Accept marks the request as taken by a host.
func (r *Request) Accept() {
	r.accepted.Store(true)
}

// Accepted reports whether any host took the request.
func (r *Request) Accepted() bool {
	return r.accepted.Load()
}

// OpenOption customizes a request before it is published.
type OpenOption func(*Request)

// WithKind labels the request for logs and metrics
func WithKind(kind string) OpenOption {
	return func(r *Request) {
		r.Kind = kind
	}
}

// WithContainer sets the container options
func WithContainer(opts ContainerOptions) OpenOption {
	return func(r *Request) {
		r.Options.Container = opts
	}
}

// WithContent sets the content options
func WithContent(opts ContentOptions) OpenOption {
	return func(r *Request) {
		r.Options.Content = opts
	}
}

// WithStyleClass names the theme style class used for the frame
func WithStyleClass(class string) OpenOption {
	return func(r *Request) {
		r.Options.StyleClass = class
	}
}
