package errors

import (
	"fmt"
)

// StorageWriteFailed creates the non-fatal warning returned when a saved-recipes
// mutation was applied in memory but could not be persisted.
func StorageWriteFailed(key string, cause error) *CookbookError {
	return &CookbookError{
		Kind:    ErrStorage,
		Message: "saved recipes could not be written",
		Cause:   cause,
		Details: map[string]string{"key": key},
		Suggestion: `Your change is kept for this session but may be lost on exit.
Check that storage.dir is writable or switch storage.driver in config.yaml.`,
	}
}

// StorageReadFailed creates an error for unreadable storage.
func StorageReadFailed(key string, cause error) *CookbookError {
	return &CookbookError{
		Kind:    ErrStorage,
		Message: "saved recipes could not be read",
		Cause:   cause,
		Details: map[string]string{"key": key},
	}
}

// RecipeNotFound creates an error for an id that is not in the fetched list.
func RecipeNotFound(id int) *CookbookError {
	return &CookbookError{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("recipe %d not found", id),
		Details:    map[string]string{"id": fmt.Sprintf("%d", id)},
		Suggestion: "List available recipes with: cookbook list",
	}
}

// InvalidInput creates a validation error for a single field.
func InvalidInput(field, message string) *CookbookError {
	return &CookbookError{
		Kind:    ErrValidation,
		Message: message,
		Details: map[string]string{"field": field},
	}
}
