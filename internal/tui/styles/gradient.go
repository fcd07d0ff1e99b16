package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal gradient
func ApplyGradient(text string, color1, color2 color.Color, bold bool) string {
	if text == "" {
		return ""
	}

	// Handle Unicode properly
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var output strings.Builder
	colors := blendColors(len(clusters), color1, color2)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(bold)
		output.WriteString(style.Render(cluster))
	}
	return output.String()
}

// RenderThemeGradient renders text with the current theme's primary gradient
func RenderThemeGradient(text string, bold bool) string {
	theme := CurrentTheme()
	return ApplyGradient(text, theme.Primary, theme.Secondary, bold)
}

// RenderGradientBar creates a gradient progress bar
func RenderGradientBar(width int, filled float64) string {
	if width <= 0 {
		return ""
	}
	filled = max(0, min(1, filled))

	theme := CurrentTheme()
	filledWidth := int(float64(width) * filled)
	empty := lipgloss.NewStyle().Foreground(theme.BgSubtle)
	if filledWidth <= 0 {
		return empty.Render(strings.Repeat("░", width))
	}

	var bar strings.Builder
	colors := blendColors(filledWidth, theme.Primary, theme.Secondary)
	for i := 0; i < filledWidth; i++ {
		style := lipgloss.NewStyle().Foreground(colors[i])
		bar.WriteString(style.Render("█"))
	}
	if filledWidth < width {
		bar.WriteString(empty.Render(strings.Repeat("░", width-filledWidth)))
	}
	return bar.String()
}

// blendColors creates a gradient between colors
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	colors := make([]color.Color, steps)

	// Convert to colorful for better blending
	c1, _ := colorful.MakeColor(color1)
	c2, _ := colorful.MakeColor(color2)

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		// HCL blends perceptually evenly
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}

	return colors
}
