package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants for consistent spacing
const (
	ScreenPadding = 1 // rows/cols kept clear around the step
	MinBodyHeight = 1
)

// layoutScreen centres body in the terminal and pins helpBar to the bottom.
// Before the first WindowSizeMsg the size is unknown and the parts are simply
// stacked.
func layoutScreen(body, helpBar string, width, height int) string {
	if width <= 0 || height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Center, body, "", helpBar)
	}

	bodyH := height - lipgloss.Height(helpBar)
	if bodyH < MinBodyHeight {
		bodyH = MinBodyHeight
	}

	padded := lipgloss.NewStyle().Padding(ScreenPadding).Render(body)
	centered := lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, padded)
	bar := lipgloss.PlaceHorizontal(width, lipgloss.Center, helpBar)

	return lipgloss.JoinVertical(lipgloss.Left, centered, bar)
}
