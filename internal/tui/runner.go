package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/saved"
)

// Runner coordinates the TUI program with the saved-recipes file watcher.
type Runner struct {
	model   *Model
	program *tea.Program
	watcher *saved.Watcher
	logger  *logging.Logger
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	Options

	// WatchPath is the file backing the store. Empty disables watching.
	WatchPath string

	// ProgramOptions are passed to tea.NewProgram. The alt screen is used
	// when nil.
	ProgramOptions []tea.ProgramOption
}

// NewRunner creates a Runner. The store should already be loaded.
func NewRunner(ctx context.Context, opts RunnerOptions) (*Runner, error) {
	model := New(ctx, opts.Options)

	progOpts := opts.ProgramOptions
	if progOpts == nil {
		progOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	progOpts = append(progOpts, tea.WithContext(ctx))
	program := tea.NewProgram(model, progOpts...)

	r := &Runner{
		model:   model,
		program: program,
		logger:  model.logger,
	}

	// Only external reloads are forwarded: changes made from Update refresh
	// the model directly, and Send from inside Update would block.
	model.store.Subscribe(func(e saved.Event) {
		if e.Kind == saved.EventReloaded {
			program.Send(SavedChangedMsg{Event: e})
		}
	})

	if opts.WatchPath != "" {
		w, err := saved.NewWatcher(model.store, opts.WatchPath)
		if err != nil {
			return nil, err
		}
		r.watcher = w
	}

	return r, nil
}

// Run runs the TUI on the calling goroutine until the user quits.
func (r *Runner) Run(ctx context.Context) error {
	if r.watcher != nil {
		defer r.watcher.Stop()
		if err := r.watcher.Start(ctx); err != nil {
			r.logger.Warn("saved recipes watcher not started", "error", err)
		}
	}

	r.logger.Info("starting tui")
	_, err := r.program.Run()
	if err != nil {
		r.logger.Error("tui exited with error", "error", err)
		return err
	}
	r.logger.Info("tui exited")
	return nil
}

// Program returns the tea.Program for external access.
func (r *Runner) Program() *tea.Program {
	return r.program
}

// Model returns the TUI model for external access.
func (r *Runner) Model() *Model {
	return r.model
}
