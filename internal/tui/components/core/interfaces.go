package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Sizeable components are told how much space they may draw in
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
	GetSize() (width, height int)
}
