package dialog

import (
	"time"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/search"
	"github.com/billie-coop/showcase/internal/tui/styles"
)

// Request kinds used for logs and metrics
const (
	KindConfirm  = "confirm"
	KindInput    = "input"
	KindSelect   = "select"
	KindProgress = "progress"
	KindLookup   = "lookup"
)

// ConfirmOptions customize a confirm dialog
type ConfirmOptions struct {
	ConfirmText string
	CancelText  string
	Variant     Variant
}

// Confirm asks a yes/no question. A dismissed dialog settles as (false, false).
func Confirm(svc *dialog.Service, title, message string, opts ConfirmOptions) *dialog.Pending[bool] {
	class := styles.ClassDefault
	if opts.Variant == VariantDestructive {
		class = styles.ClassDestructive
	}
	return dialog.Open[bool](svc,
		NewConfirm(ConfirmProps{
			Title:       title,
			Message:     message,
			ConfirmText: opts.ConfirmText,
			CancelText:  opts.CancelText,
			Variant:     opts.Variant,
		}),
		dialog.WithKind(KindConfirm),
		dialog.WithStyleClass(class),
	)
}

// Input asks for a line of text. Blank answers and dismissals settle with
// ok == false.
func Input(svc *dialog.Service, title, placeholder, defaultValue string) *dialog.Pending[string] {
	return dialog.Open[string](svc,
		NewInput(InputProps{
			Title:        title,
			Placeholder:  placeholder,
			DefaultValue: defaultValue,
		}),
		dialog.WithKind(KindInput),
	)
}

// Select asks for one of options, preselecting defaultValue when it is one of
// them.
func Select[T comparable](svc *dialog.Service, title string, options []Option[T], defaultValue *T) *dialog.Pending[T] {
	return dialog.Open[T](svc,
		NewSelect(SelectProps[T]{
			Title:        title,
			Options:      options,
			DefaultValue: defaultValue,
		}),
		dialog.WithKind(KindSelect),
	)
}

// Loading shows a timed progress dialog that resolves with the simulated
// outcome. A zero duration uses DefaultProgressDuration.
func Loading(svc *dialog.Service, title, message string, duration time.Duration) *dialog.Pending[bool] {
	return LoadingWith(svc, ProgressProps{
		Title:    title,
		Message:  message,
		Duration: duration,
	})
}

// LoadingWith is Loading with full control over the progress settings
func LoadingWith(svc *dialog.Service, props ProgressProps) *dialog.Pending[bool] {
	return dialog.Open[bool](svc,
		NewProgress(props),
		dialog.WithKind(KindProgress),
		dialog.WithStyleClass(styles.ClassInfo),
	)
}

// Lookup lets the user search s and pick one result.
func Lookup(svc *dialog.Service, title string, s search.Searcher, pageSize int) *dialog.Pending[search.Item] {
	return dialog.Open[search.Item](svc,
		NewLookup(LookupProps{
			Title:       title,
			Placeholder: "Type a name",
			Searcher:    s,
			PageSize:    pageSize,
		}),
		dialog.WithKind(KindLookup),
		dialog.WithContainer(dialog.ContainerOptions{Width: 48}),
	)
}
