package dialog

import (
	"math/rand/v2"
	"time"

	"github.com/billie-coop/showcase/internal/dialog"
	"github.com/billie-coop/showcase/internal/tui/components/core"
	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const (
	DefaultProgressDuration = 3 * time.Second
	DefaultSettleDelay      = 1500 * time.Millisecond
	DefaultSuccessRate      = 0.7

	progressBarWidth = 32
)

// ProgressProps configure a timed progress dialog
type ProgressProps struct {
	Title   string
	Message string
	// Duration of the simulated work
	Duration time.Duration
	// SettleDelay is how long the outcome stays on screen
	SettleDelay time.Duration
	// SuccessRate is the probability of a successful outcome, in (0, 1]
	SuccessRate float64
	// Rand returns a number in [0, 1). Defaults to math/rand.
	Rand func() float64
}

type progressStage int

const (
	stageRunning progressStage = iota
	stageSettled
	stageDone
)

// ProgressBody simulates a long running operation. It shows a spinner for
// Duration, then the random outcome for SettleDelay, then resolves with
// whether the operation succeeded.
type ProgressBody struct {
	props   ProgressProps
	resolve dialog.Resolver
	keys    KeyMap

	spinner spinner.Model
	work    *core.Timer
	settle  *core.Timer

	stage   progressStage
	success bool
}

var (
	_ dialog.Body   = (*ProgressBody)(nil)
	_ dialog.Closer = (*ProgressBody)(nil)
)

// NewProgress returns a factory for a timed progress dialog
func NewProgress(props ProgressProps) dialog.Factory {
	if props.Duration <= 0 {
		props.Duration = DefaultProgressDuration
	}
	if props.SettleDelay <= 0 {
		props.SettleDelay = DefaultSettleDelay
	}
	if props.SuccessRate <= 0 || props.SuccessRate > 1 {
		props.SuccessRate = DefaultSuccessRate
	}
	if props.Rand == nil {
		props.Rand = rand.Float64
	}

	return func(resolve dialog.Resolver) dialog.Body {
		return &ProgressBody{
			props:   props,
			resolve: resolve,
			keys:    DefaultKeyMap(),
			spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
			work:    core.NewTimer("work"),
			settle:  core.NewTimer("settle"),
		}
	}
}

// Init starts the simulated work
func (d *ProgressBody) Init() tea.Cmd {
	return tea.Batch(d.spinner.Tick, d.work.Start(d.props.Duration))
}

// Update handles messages
func (d *ProgressBody) Update(msg tea.Msg) (dialog.Body, tea.Cmd) {
	switch msg := msg.(type) {
	case core.TimerFiredMsg:
		switch {
		case d.work.Fired(msg):
			d.success = d.props.Rand() < d.props.SuccessRate
			d.stage = stageSettled
			return d, d.settle.Start(d.props.SettleDelay)
		case d.settle.Fired(msg):
			return d, d.finish()
		}

	case spinner.TickMsg:
		if d.stage == stageRunning {
			var cmd tea.Cmd
			d.spinner, cmd = d.spinner.Update(msg)
			return d, cmd
		}

	case tea.KeyPressMsg:
		if d.stage == stageSettled && key.Matches(msg, d.keys.Close) {
			d.settle.Stop()
			return d, d.finish()
		}
	}
	return d, nil
}

func (d *ProgressBody) finish() tea.Cmd {
	d.stage = stageDone
	return d.resolve(d.success)
}

// Close stops both timers. Ticks already scheduled are ignored.
func (d *ProgressBody) Close() {
	d.work.Stop()
	d.settle.Stop()
}

// Settled reports whether the outcome is known, and what it is
func (d *ProgressBody) Settled() (success, settled bool) {
	return d.success, d.stage != stageRunning
}

// ShortHelp returns the bindings shown under the dialog
func (d *ProgressBody) ShortHelp() []key.Binding {
	if d.stage == stageSettled {
		return []key.Binding{d.keys.Close}
	}
	return nil
}

// View renders the dialog
func (d *ProgressBody) View() string {
	s := styles.CurrentTheme().S()

	if d.stage == stageRunning {
		done := 1 - float64(d.work.Remaining())/float64(d.props.Duration)
		return lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render(d.spinner.View()+" "+d.props.Title),
			"",
			s.Muted.Render(d.props.Message),
			"",
			styles.RenderGradientBar(progressBarWidth, done)+" "+
				s.Subtle.Render(core.FormatSeconds(d.work.Remaining())),
		)
	}

	title := s.Success.Bold(true).Render(styles.CheckIcon + " " + d.props.Title)
	message := "Operation completed successfully!"
	if !d.success {
		title = s.Error.Bold(true).Render(styles.ErrorIcon + " " + d.props.Title)
		message = "An error occurred during the operation"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.Muted.Render(message),
		"",
		s.ButtonFocused.Render("Close"),
	)
}
