package dialog

import (
	"strings"

	"github.com/billie-coop/showcase/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Offset applied per stacking depth so covered dialogs stay visible.
const (
	cascadeX = 2
	cascadeY = 1
)

// helper is implemented by bodies that advertise their key bindings.
type helper interface {
	ShortHelp() []key.Binding
}

// View draws every open dialog over background, oldest first.
func (h *Host) View(background string) string {
	entries := h.open.ToSlice()
	if len(entries) == 0 {
		return background
	}

	width, height := h.Width, h.Height
	lines := splitLines(background)
	if width <= 0 {
		width = maxLineWidth(lines)
	}
	if height <= 0 {
		height = len(lines)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	out := strings.Join(lines, "\n")

	for depth, e := range entries {
		frame := h.renderFrame(e)
		fw, fh := lipgloss.Width(frame), lipgloss.Height(frame)
		x := max(0, (width-fw)/2+depth*cascadeX)
		y := max(0, (height-fh)/2+depth*cascadeY)
		out = overlayAt(out, frame, x, y, max(width, x+fw), max(height, y+fh))
	}
	return out
}

// renderFrame draws the modal container around a body.
func (h *Host) renderFrame(e *entry) string {
	theme := styles.CurrentTheme()
	opts := e.req.Options

	content := e.body.View()
	if opts.Content.PaddingX > 0 || opts.Content.PaddingY > 0 {
		content = lipgloss.NewStyle().
			Padding(opts.Content.PaddingY, opts.Content.PaddingX).
			Render(content)
	}

	if !opts.Content.HideHelp {
		var bindings []key.Binding
		if hb, ok := e.body.(helper); ok {
			bindings = append(bindings, hb.ShortHelp()...)
		}
		if !opts.Container.DisableDismiss {
			bindings = append(bindings, h.keys.Dismiss)
		}
		if len(bindings) > 0 {
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", h.help.ShortHelpView(bindings))
		}
	}

	frame := theme.FrameFor(opts.StyleClass)
	if opts.Container.Width > 0 {
		frame = frame.Width(opts.Container.Width)
	}
	return frame.Render(content)
}

// overlayAt composites overlay on top of base at cell position (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
