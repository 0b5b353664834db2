package tui

import (
	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/resources"

	tea "github.com/charmbracelet/bubbletea"
)

// Preview renders a single frame for s at the given terminal size without
// starting a program.
func Preview(s lemonade.State, width, height int, cfg *config.Config, res *resources.Bundle) string {
	m := NewModel(cfg, res, lemonade.SystemRand(), nil)
	m.state = s
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.View()
}
