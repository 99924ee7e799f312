package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/desertthunder/hrtools/internal/ui"
	"github.com/urfave/cli/v3"
)

const defaultLogFile = "./tmp/hrtools-tui.log"

// TUI launches the interactive terminal UI, preloaded with any input flags.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = defaultLogFile
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, shared.ParseLevel(r.config.Log.Level))
	r.SetLogger(fileLogger)

	sess := r.newSession(cmd, r.config, fileLogger)
	if err := r.applyInput(cmd, sess); err != nil {
		return err
	}

	model := ui.NewModel(sess, ui.Opts{
		OutputDir: r.config.Grouping.OutputDir,
		Logger:    fileLogger,
		Now:       r.now,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
