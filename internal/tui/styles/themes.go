package styles

// DefaultThemeName is the only built-in theme
const DefaultThemeName = "showcase"

// NewShowcaseTheme creates the default theme, a violet to sky gradient on slate
func NewShowcaseTheme() *Theme {
	return &Theme{
		Name:   DefaultThemeName,
		IsDark: true,

		// Brand colors
		Primary:   MustParseHex("#7c3aed"), // Violet
		Secondary: MustParseHex("#60a5fa"), // Sky blue
		Tertiary:  MustParseHex("#f472b6"), // Pink
		Accent:    MustParseHex("#a78bfa"), // Light violet

		// Background colors
		BgBase:    MustParseHex("#0f172a"), // Slate 900
		BgSubtle:  MustParseHex("#334155"), // Slate 700
		BgOverlay: MustParseHex("#1e293b"), // Slate 800

		// Foreground colors
		FgBase:     MustParseHex("#f8fafc"),
		FgMuted:    MustParseHex("#cbd5e1"),
		FgSubtle:   MustParseHex("#94a3b8"),
		FgInverted: MustParseHex("#0f172a"),

		// Border colors
		Border:      MustParseHex("#475569"),
		BorderFocus: MustParseHex("#a78bfa"),

		// Semantic colors
		Success: MustParseHex("#34d399"),
		Error:   MustParseHex("#f87171"),
		Warning: MustParseHex("#fbbf24"),
		Info:    MustParseHex("#60a5fa"),

		// Special colors
		Blue:      MustParseHex("#60a5fa"),
		BlueLight: MustParseHex("#93c5fd"),
		Green:     MustParseHex("#34d399"),
		Yellow:    MustParseHex("#fbbf24"),
		Purple:    MustParseHex("#a78bfa"),
		Pink:      MustParseHex("#f472b6"),
		Orange:    MustParseHex("#fb923c"),
		Cyan:      MustParseHex("#67e8f9"),
	}
}
