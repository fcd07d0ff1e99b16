package styles

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/glamour/v2/ansi"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Style classes a dialog can request for its frame.
const (
	ClassDefault     = ""
	ClassDestructive = "destructive"
	ClassSuccess     = "success"
	ClassInfo        = "info"
)

// Semantic color names for consistency
type Theme struct {
	Name   string
	IsDark bool

	// Brand colors
	Primary   color.Color
	Secondary color.Color
	Tertiary  color.Color
	Accent    color.Color

	// Background colors
	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	// Foreground colors
	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	// Border colors
	Border      color.Color
	BorderFocus color.Color

	// Semantic colors
	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	// Special colors
	Blue      color.Color
	BlueLight color.Color
	Green     color.Color
	Yellow    color.Color
	Purple    color.Color
	Pink      color.Color
	Orange    color.Color
	Cyan      color.Color

	styles *Styles
}

type Styles struct {
	Base    lipgloss.Style
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Dialog frame
	Frame     lipgloss.Style
	Help      lipgloss.Style
	InputLine lipgloss.Style

	// Buttons
	Button            lipgloss.Style
	ButtonFocused     lipgloss.Style
	ButtonDestructive lipgloss.Style
	ButtonDisabled    lipgloss.Style

	// Option lists
	Option         lipgloss.Style
	OptionCursor   lipgloss.Style
	OptionSelected lipgloss.Style

	Toast lipgloss.Style

	Markdown ansi.StyleConfig
}

func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// FrameFor returns the dialog frame style for a style class. Unknown classes
// get the default frame.
func (t *Theme) FrameFor(class string) lipgloss.Style {
	frame := t.S().Frame
	switch class {
	case ClassDestructive:
		return frame.BorderForeground(t.Error)
	case ClassSuccess:
		return frame.BorderForeground(t.Success)
	case ClassInfo:
		return frame.BorderForeground(t.Info)
	default:
		return frame
	}
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Text: base,

		Muted: base.Foreground(t.FgMuted),

		Subtle: base.Foreground(t.FgSubtle),

		Bold: base.Bold(true),

		Success: base.Foreground(t.Success),

		Error: base.Foreground(t.Error),

		Warning: base.Foreground(t.Warning),

		Info: base.Foreground(t.Info),

		Frame: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Background(t.BgOverlay).
			Padding(1, 2),

		Help: base.
			Foreground(t.FgSubtle).
			Italic(true),

		InputLine: base.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			BorderForeground(t.Border),

		Button: base.
			Background(t.BgSubtle).
			Foreground(t.FgBase).
			Padding(0, 3),

		ButtonFocused: base.
			Background(t.Primary).
			Foreground(t.FgInverted).
			Bold(true).
			Padding(0, 3),

		ButtonDestructive: base.
			Background(t.Error).
			Foreground(t.FgInverted).
			Bold(true).
			Padding(0, 3),

		ButtonDisabled: base.
			Background(t.BgSubtle).
			Foreground(t.FgSubtle).
			Faint(true).
			Padding(0, 3),

		Option: base.
			PaddingLeft(2),

		OptionCursor: base.
			PaddingLeft(1).
			Foreground(t.Accent).
			Bold(true),

		OptionSelected: base.
			Foreground(t.Success).
			Bold(true),

		Toast: base.
			Background(t.BgSubtle).
			Padding(0, 1),

		Markdown: t.buildMarkdownStyles(),
	}
}

// Helper functions for style pointers
func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

func (t *Theme) buildMarkdownStyles() ansi.StyleConfig {
	hex := func(c color.Color) *string {
		return stringPtr(colorToHex(c))
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: hex(t.FgBase),
			},
			Margin: uintPtr(1),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: hex(t.FgMuted),
			},
			Indent:      uintPtr(1),
			IndentToken: stringPtr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       hex(t.Secondary),
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           hex(t.FgInverted),
				BackgroundColor: hex(t.Primary),
				Bold:            boolPtr(true),
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
				Color:  hex(t.Accent),
				Bold:   boolPtr(true),
			},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "### ",
				Color:  hex(t.Tertiary),
			},
		},
		Text: ansi.StylePrimitive{
			Color: hex(t.FgBase),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
			},
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Link: ansi.StylePrimitive{
			Color:     hex(t.BlueLight),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: hex(t.BlueLight),
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:           hex(t.Accent),
				BackgroundColor: hex(t.BgSubtle),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: hex(t.FgBase),
				},
				Margin: uintPtr(2),
			},
			Chroma: &ansi.Chroma{
				Text:          ansi.StylePrimitive{Color: hex(t.FgBase)},
				Error:         ansi.StylePrimitive{Color: hex(t.Error)},
				Comment:       ansi.StylePrimitive{Color: hex(t.FgMuted), Italic: boolPtr(true)},
				Keyword:       ansi.StylePrimitive{Color: hex(t.Primary), Bold: boolPtr(true)},
				KeywordType:   ansi.StylePrimitive{Color: hex(t.Blue)},
				Operator:      ansi.StylePrimitive{Color: hex(t.Orange)},
				Punctuation:   ansi.StylePrimitive{Color: hex(t.FgSubtle)},
				Name:          ansi.StylePrimitive{Color: hex(t.FgBase)},
				NameBuiltin:   ansi.StylePrimitive{Color: hex(t.Yellow)},
				NameFunction:  ansi.StylePrimitive{Color: hex(t.BlueLight)},
				LiteralNumber: ansi.StylePrimitive{Color: hex(t.Yellow)},
				LiteralString: ansi.StylePrimitive{Color: hex(t.Green)},
			},
		},
	}
}

// Manager handles theme switching and registration
type Manager struct {
	themes  map[string]*Theme
	current *Theme
}

var defaultManager *Manager

func SetDefaultManager(m *Manager) {
	defaultManager = m
}

func DefaultManager() *Manager {
	if defaultManager == nil {
		defaultManager = NewManager(DefaultThemeName)
	}
	return defaultManager
}

func CurrentTheme() *Theme {
	return DefaultManager().Current()
}

func NewManager(defaultTheme string) *Manager {
	m := &Manager{
		themes: make(map[string]*Theme),
	}

	m.Register(NewShowcaseTheme())

	m.current = m.themes[defaultTheme]
	if m.current == nil {
		m.current = m.themes[DefaultThemeName]
	}

	return m
}

func (m *Manager) Register(theme *Theme) {
	m.themes[theme.Name] = theme
}

func (m *Manager) Current() *Theme {
	return m.current
}

func (m *Manager) SetTheme(name string) error {
	if theme, ok := m.themes[name]; ok {
		m.current = theme
		return nil
	}
	return fmt.Errorf("theme %s not found", name)
}

func (m *Manager) List() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color utility functions

// ParseHex converts a "#rrggbb" or "#rgb" string to a color
func ParseHex(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHex is ParseHex for color literals. It panics on a malformed one.
func MustParseHex(hex string) color.Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// colorToHex converts color to a "#rrggbb" string
func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
