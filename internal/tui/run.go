package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Run starts the demo and blocks until the user quits or ctx is cancelled.
// Dialogs still open when it returns settle as cancelled.
func Run(ctx context.Context, deps Deps) error {
	m := New(ctx, deps)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	mount, err := m.Host().Mount(p)
	if err != nil {
		return fmt.Errorf("failed to mount dialog host: %w", err)
	}
	defer mount.Unmount()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited: %w", err)
	}
	return nil
}
