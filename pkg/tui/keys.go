package tui

import (
	"fmt"
	"os"

	"Lemonade/pkg/config"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	tap  key.Binding
	help key.Binding
	quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tap, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.tap},
		{k.help, k.quit},
	}
}

func newKeyMap(mouse bool) keyMap {
	tapHelp := "space/enter"
	if mouse {
		tapHelp = "click/space/enter"
	}
	return keyMap{
		tap:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp(tapHelp, "tap")),
		help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// quitKeyFilter force-exits after three Ctrl+C presses in a row. Ctrl+C is
// also a quit binding, so this only fires when Update has stopped running.
func quitKeyFilter(ui config.UIConfig) func(tea.Model, tea.Msg) tea.Msg {
	ctrlCCount := 0
	return func(m tea.Model, msg tea.Msg) tea.Msg {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.Type {
			case tea.KeyCtrlC:
				ctrlCCount++
				if ctrlCCount >= 3 {
					RestoreTerminal(ui)
					fmt.Fprintln(os.Stderr, "\nForce quit.")
					os.Exit(1)
				}
			default:
				ctrlCCount = 0
			}
		}
		return msg
	}
}

// RestoreTerminal shows the cursor and undoes the mouse and alternate screen
// modes the session enabled.
func RestoreTerminal(ui config.UIConfig) {
	fmt.Print(restoreSequence(ui))
}

func restoreSequence(ui config.UIConfig) string {
	seq := "\033[?25h"
	if ui.Mouse {
		seq = "\033[?1000l\033[?1002l\033[?1003l\033[?1006l" + seq
	}
	if ui.AltScreen {
		seq += "\033[?1049l"
	}
	return seq
}
