package tui

import (
	"Lemonade/pkg/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	LemonGreen = lipgloss.Color("#4CAF50") // Material green 500
	FrameGreen = lipgloss.Color("#00FF00")
	MutedColor = lipgloss.Color("#64748B") // Slate 500
)

// styles are built per model so config colours apply.
type styles struct {
	frame       lipgloss.Style
	art         lipgloss.Style
	title       lipgloss.Style
	secondary   lipgloss.Style
	description lipgloss.Style
	help        lipgloss.Style
}

func newStyles(ui config.UIConfig) styles {
	text := colorOr(ui.TextColor, LemonGreen)
	frame := colorOr(ui.FrameColor, FrameGreen)

	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frame).
			Padding(1, 3),

		art: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEB3B")), // lemon yellow

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(text).
			Align(lipgloss.Center),

		secondary: lipgloss.NewStyle().
			Foreground(text),

		description: lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Align(lipgloss.Center),

		help: lipgloss.NewStyle().
			Foreground(MutedColor),
	}
}

func colorOr(c string, fallback lipgloss.Color) lipgloss.Color {
	if c == "" {
		return fallback
	}
	return lipgloss.Color(c)
}
