package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cloudide/internal/workspace"
)

// Run starts the TUI over ctrl and blocks until the user quits
func Run(ctrl *workspace.Controller, opts Options) error {
	m := New(ctrl, opts)
	m.logger.Info("tui started")

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	m.logger.WithField("open_tabs", len(m.snap.Tabs)).Info("tui stopped")
	return nil
}
