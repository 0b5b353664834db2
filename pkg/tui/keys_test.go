package tui

import (
	"strings"
	"testing"

	"Lemonade/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRestoreSequence(t *testing.T) {
	tests := []struct {
		name      string
		ui        config.UIConfig
		mouse     bool
		altScreen bool
	}{
		{"defaults", config.UIConfig{Mouse: true, AltScreen: true}, true, true},
		{"inline without mouse", config.UIConfig{}, false, false},
		{"mouse only", config.UIConfig{Mouse: true}, true, false},
		{"alt screen only", config.UIConfig{AltScreen: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := restoreSequence(tt.ui)
			assert.Contains(t, seq, "\033[?25h", "cursor is always shown")
			assert.Equal(t, tt.mouse, strings.Contains(seq, "\033[?1000l"))
			assert.Equal(t, tt.altScreen, strings.Contains(seq, "\033[?1049l"))
		})
	}
}

func TestQuitKeyFilterPassesMessagesThrough(t *testing.T) {
	filter := quitKeyFilter(config.UIConfig{})
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	// Two presses, a reset, then two more never reach the force-exit.
	for _, msg := range []tea.Msg{ctrlC, ctrlC, spaceKey, ctrlC, ctrlC} {
		assert.Equal(t, msg, filter(nil, msg))
	}
}
