// Package tui provides the terminal screen for the lemonade cycle.
package tui

import (
	"context"

	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/logger"
	"Lemonade/pkg/resources"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state
type Model struct {
	state lemonade.State
	rng   lemonade.Rand

	res    *resources.Bundle
	styles styles
	keys   keyMap
	help   help.Model
	log    *logger.Logger

	mouse            bool
	showDescriptions bool

	width  int
	height int
}

// NewModel creates the screen with a fresh cycle. rng draws every squeeze
// target for the life of the model.
func NewModel(cfg *config.Config, res *resources.Bundle, rng lemonade.Rand, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}
	return Model{
		state:            lemonade.New(rng),
		rng:              rng,
		res:              res,
		styles:           newStyles(cfg.UI),
		keys:             newKeyMap(cfg.UI.Mouse),
		help:             help.New(),
		log:              log,
		mouse:            cfg.UI.Mouse,
		showDescriptions: cfg.UI.ShowDescriptions,
	}
}

// State returns the current cycle state.
func (m Model) State() lemonade.State {
	return m.state
}

// Update handles TUI events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.MouseMsg:
		// Anywhere on screen counts; wheel and motion events do not.
		if m.mouse && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m = m.tap("mouse")
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.tap):
			m = m.tap("key")
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// tap advances the cycle by one step.
func (m Model) tap(source string) Model {
	prev := m.state
	m.state = m.state.Advance(m.rng)
	m.log.Debug("tap (%s): %s -> %s taps=%d/%d",
		source, prev.Stage, m.state.Stage, m.state.TapCount, m.state.RequiredTaps)
	if prev.Stage == lemonade.StageEmpty {
		m.log.Info("new cycle, %d squeezes required", m.state.RequiredTaps)
	}
	return m
}

// View renders the TUI
func (m Model) View() string {
	step := renderStep(present(m.state), m.res, m.styles, m.width, m.showDescriptions)
	helpBar := m.styles.help.Render(m.help.View(m.keys))
	return layoutScreen(step, helpBar, m.width, m.height)
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, res *resources.Bundle, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	opts := []tea.ProgramOption{
		tea.WithFilter(quitKeyFilter(cfg.UI)),
	}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}

	m := NewModel(cfg, res, lemonade.SeededRand(cfg.Seed), log)
	log.Info("screen started, %d squeezes required", m.state.RequiredTaps)

	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(Model); ok {
		log.Info("screen closed at stage %s", fm.state.Stage)
	}
	return err
}
