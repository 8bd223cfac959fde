package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"trailview/internal/app/logs"
	"trailview/internal/app/source"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// Runner drives the interactive viewer for a log source
type Runner interface {
	Run(ctx context.Context, src logs.Source, watcher source.Watcher) error
}

// teaRunner implements Runner on a Bubble Tea program
type teaRunner struct {
	cfg *config.Config
	log logger.Logger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, log logger.Logger) Runner {
	return &teaRunner{cfg: cfg, log: log}
}

// Run starts the viewer and blocks until the user quits. A non-nil
// watcher pushes refreshes into the program when log files change.
func (r *teaRunner) Run(ctx context.Context, src logs.Source, watcher source.Watcher) error {
	model := NewModel(ctx, src, r.cfg, r.log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if watcher != nil {
		if err := watcher.Start(func() {
			program.Send(RefreshRequested())
		}); err != nil {
			r.log.Warn().Err(err).Msg("Log directory watch unavailable")
		}

		defer watcher.Close()
	}

	_, err := program.Run()

	return err
}
