package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/ui"
)

// Run executes the Bubble Tea program for the portfolio.
func Run(cfg *config.Config, logger *slog.Logger) error {
	state, err := LoadInitialState(cfg, logger)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	model := ui.NewModel(state)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if state.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	return err
}
