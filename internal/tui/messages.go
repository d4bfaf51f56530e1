package tui

import (
	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/saved"
)

// Message types for TUI state updates.

// RecipesLoadedMsg carries the result of one fetch. Gen is the generation the
// fetch was issued with; results from an older generation are dropped.
type RecipesLoadedMsg struct {
	Gen     uint64
	Order   recipe.SortOrder
	Recipes []recipe.Recipe
	Err     error
}

// SavedChangedMsg is sent when the saved-recipes store was reloaded from
// storage by another process.
type SavedChangedMsg struct {
	Event saved.Event
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg struct {
	Text    string
	Warning bool
}

// QuitMsg signals the TUI to quit.
type QuitMsg struct {
	Reason string
}
