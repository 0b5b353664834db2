package tui

import (
	"Lemonade/pkg/resources"

	tea "github.com/charmbracelet/bubbletea"
)

// Init sets the terminal title; the screen is otherwise static until a tap.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.res.Text(resources.TextAppName))
}
