package status

import (
	"time"

	"github.com/billie-coop/showcase/internal/tui/components/core"
	"github.com/billie-coop/showcase/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// DefaultClearAfter is how long a message stays visible
const DefaultClearAfter = 5 * time.Second

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements a status bar that shows temporary messages
type Component struct {
	core.SizeableBase

	message     *StatusMessage
	leftContent string

	clearAfter time.Duration
	clear      *core.Timer
}

var _ core.Sizeable = (*Component)(nil)

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: DefaultClearAfter,
		clear:      core.NewTimer("status"),
	}
}

// SetClearAfter changes how long messages stay visible
func (c *Component) SetClearAfter(d time.Duration) {
	c.clearAfter = d
}

// SetMessage shows content until the clear timer fires or another message
// replaces it
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	return c.clear.Start(c.clearAfter)
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the message on display, if any
func (c *Component) Message() (StatusMessage, bool) {
	if c.message == nil {
		return StatusMessage{}, false
	}
	return *c.message, true
}

// SetLeftContent sets the left side content, usually key hints
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update clears the message when its timer fires
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if c.clear.Fired(msg) {
		c.message = nil
	}
	return c, nil
}

// View implements the Component interface
func (c *Component) View() string {
	if c.Width == 0 {
		return ""
	}

	s := styles.CurrentTheme().S()
	statusStyle := s.Toast.Width(c.Width).MaxHeight(1)

	leftContent := c.leftContent
	rightContent := ""
	if c.message != nil {
		rightContent = c.formatMessage(s)
	}

	// Account for padding
	availableWidth := c.Width - 2

	if ansi.StringWidth(leftContent)+ansi.StringWidth(rightContent)+1 > availableWidth {
		rightContent = ansi.Truncate(rightContent, max(0, availableWidth/2), "…")
		remaining := availableWidth - ansi.StringWidth(rightContent) - 1
		leftContent = ansi.Truncate(leftContent, max(0, remaining), "…")
	}

	content := leftContent
	if rightContent != "" {
		gap := max(1, availableWidth-ansi.StringWidth(leftContent)-ansi.StringWidth(rightContent))
		content = lipgloss.JoinHorizontal(lipgloss.Top, leftContent, lipgloss.NewStyle().Width(gap).Render(""), rightContent)
	}

	return statusStyle.Render(content)
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage(s *styles.Styles) string {
	switch c.message.Type {
	case Success:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case Warning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case Error:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return s.Info.Render(styles.InfoIcon + " " + c.message.Content)
	}
}
