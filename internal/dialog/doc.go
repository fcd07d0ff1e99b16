// Package dialog lets code outside the render loop ask the user something
// and wait for the answer.
//
// A Service turns a body factory into a Request, publishes it on the event
// bus and hands back a Pending result. The mounted host (see
// internal/tui/components/dialog) renders the request as a modal and resolves
// it exactly once, either with the body's answer or with nil when the modal is
// dismissed.
//
//	svc := dialog.NewService(bus)
//	p := dialog.Open[bool](svc, confirmBody, dialog.WithKind("confirm"))
//	ok, answered, err := p.Await(ctx)
//
// Open must not be called from inside a Bubble Tea Update: run it from a
// command (see AwaitCmd) so the host can receive the request.
package dialog
