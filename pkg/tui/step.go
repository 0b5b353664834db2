package tui

import (
	"Lemonade/pkg/resources"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// renderStep draws one stage: the illustration in a rounded frame, the bold
// instruction beneath it, then the remaining-taps line and the description
// caption when present. A positive width bounds the caption wrap.
func renderStep(p presentation, res *resources.Bundle, st styles, width int, showDescription bool) string {
	// An empty part joins as one blank line.
	parts := []string{
		st.frame.Render(st.art.Render(res.Image(p.image))),
		"",
		st.title.Render(res.Text(p.text)),
	}

	if p.secondary != "" {
		parts = append(parts, "", st.secondary.Render(p.secondary))
	}

	if showDescription {
		caption := res.Text(p.description)
		// Width is unknown until the first resize.
		if width > 0 {
			wrapAt := width - 4
			if wrapAt < 10 {
				wrapAt = 10
			}
			caption = wordwrap.String(caption, wrapAt)
		}
		parts = append(parts, "", st.description.Render(caption))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
