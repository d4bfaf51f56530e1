package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/cookbook/internal/saved"
	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/storage"
	"github.com/dbmrq/cookbook/internal/tui/styles"
)

func headlessOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	}
}

func TestNewRunner(t *testing.T) {
	t.Cleanup(func() { styles.ApplyTheme(session.ThemeDark) })

	r, err := NewRunner(context.Background(), RunnerOptions{
		Options:        Options{Fetcher: &fakeFetcher{recipes: testRecipes}},
		ProgramOptions: headlessOptions(),
	})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if r.Model() == nil || r.Program() == nil {
		t.Fatal("runner should expose its model and program")
	}
	if r.watcher != nil {
		t.Error("no watcher should be created without a path")
	}
}

func TestNewRunnerWithWatchPath(t *testing.T) {
	t.Cleanup(func() { styles.ApplyTheme(session.ThemeDark) })

	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	store := saved.New(backend)

	r, err := NewRunner(context.Background(), RunnerOptions{
		Options:        Options{Fetcher: &fakeFetcher{}, Store: store},
		WatchPath:      filepath.Join(dir, "recipes.json"),
		ProgramOptions: headlessOptions(),
	})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if r.watcher == nil {
		t.Fatal("watcher should be created")
	}
	r.watcher.Stop()
}

func TestRunnerRunQuits(t *testing.T) {
	t.Cleanup(func() { styles.ApplyTheme(session.ThemeDark) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := NewRunner(ctx, RunnerOptions{
		Options:        Options{Fetcher: &fakeFetcher{recipes: testRecipes}},
		WatchPath:      filepath.Join(t.TempDir(), "recipes.json"),
		ProgramOptions: headlessOptions(),
	})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	go r.Program().Send(QuitMsg{Reason: "test"})

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Model().quitting {
		t.Error("model should be quitting")
	}
}
