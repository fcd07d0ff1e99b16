package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"
	RadioOn     string = "◉"
	RadioOff    string = "○"
	Pointer     string = "▶"
)
