package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
	"github.com/rkhatta1/TheVersusProject/internal/tui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for the working feed.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.controller == nil {
		return fmt.Errorf("%w: session controller not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/versus-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := tui.NewModel(ctx, r.controller)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
