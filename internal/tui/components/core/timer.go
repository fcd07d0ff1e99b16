package core

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// TimerFiredMsg is sent when a one-shot Timer elapses.
type TimerFiredMsg struct {
	Time time.Time
	ID   string // Distinguishes timers owned by the same component
	Seq  int
}

// Timer is a one-shot timer for TUI components. Bubble Tea ticks cannot be
// withdrawn once scheduled, so Stop invalidates the pending tick instead: a
// stopped or restarted timer never reports the stale fire.
type Timer struct {
	id        string
	seq       int
	startTime time.Time
	delay     time.Duration
	isRunning bool
}

// NewTimer creates a new stopped timer.
func NewTimer(id string) *Timer {
	return &Timer{id: id}
}

// Start arms the timer to fire after d.
func (t *Timer) Start(d time.Duration) tea.Cmd {
	t.seq++
	t.startTime = time.Now()
	t.delay = d
	t.isRunning = true

	id, seq := t.id, t.seq
	return tea.Tick(d, func(tm time.Time) tea.Msg {
		return TimerFiredMsg{Time: tm, ID: id, Seq: seq}
	})
}

// Stop disarms the timer. A tick already in flight is ignored.
func (t *Timer) Stop() {
	t.isRunning = false
}

// running returns whether the timer is armed.
func (t *Timer) running() bool {
	return t.isRunning
}

// Fired reports whether msg is the live fire of this timer. It disarms the
// timer when it is.
func (t *Timer) Fired(msg tea.Msg) bool {
	fired, ok := msg.(TimerFiredMsg)
	if !ok || fired.ID != t.id || fired.Seq != t.seq || !t.isRunning {
		return false
	}
	t.isRunning = false
	return true
}

// Remaining returns the time left before the timer fires.
func (t *Timer) Remaining() time.Duration {
	if !t.isRunning {
		return 0
	}
	left := t.delay - time.Since(t.startTime)
	if left < 0 {
		return 0
	}
	return left
}

// FormatSeconds formats duration as "1.2s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
