// Package recipe provides the recipe data model shared by the fetcher, the
// saved-recipes store and the TUI.
package recipe

import (
	"fmt"
	"strings"
)

// Difficulty is how hard a recipe is to prepare.
type Difficulty string

const (
	// DifficultyEasy is for quick, beginner-friendly recipes.
	DifficultyEasy Difficulty = "Easy"
	// DifficultyMedium is for recipes that need some experience.
	DifficultyMedium Difficulty = "Medium"
	// DifficultyHard is for demanding recipes.
	DifficultyHard Difficulty = "Hard"
)

// IsValid returns true if the difficulty is one of the known values.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// Recipe is a dish as returned by the recipe API.
// Identity is the ID; every other field is display-only.
type Recipe struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Difficulty   Difficulty `json:"difficulty"`
	Tags         []string   `json:"tags"`
	Image        string     `json:"image"`
	Rating       float64    `json:"rating"`
}

// SameAs reports whether r and other identify the same recipe.
func (r Recipe) SameAs(other Recipe) bool {
	return r.ID == other.ID
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	clone := r
	clone.Ingredients = cloneStrings(r.Ingredients)
	clone.Instructions = cloneStrings(r.Instructions)
	clone.Tags = cloneStrings(r.Tags)
	return clone
}

// String returns a short one-line description.
func (r Recipe) String() string {
	return fmt.Sprintf("#%d %s (%s, %.1f)", r.ID, r.Name, r.Difficulty, r.Rating)
}

// CloneAll deep-copies a slice of recipes. A nil input yields an empty slice.
func CloneAll(recipes []Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}

// Find returns the recipe with the given id.
func Find(recipes []Recipe, id int) (Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// SortOrder is the optional sort directive sent to the recipe API.
type SortOrder string

const (
	// SortNone leaves the API's default ordering.
	SortNone SortOrder = ""
	// SortAsc sorts by name ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts by name descending.
	SortDesc SortOrder = "desc"
)

// ParseSortOrder parses a sort directive. The empty string means no sorting.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone:
		return SortNone, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return SortNone, fmt.Errorf("invalid sort order %q: must be 'asc' or 'desc'", s)
	}
}

// Next cycles none -> asc -> desc -> none.
func (o SortOrder) Next() SortOrder {
	switch o {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// Label returns a human-readable label for the order.
func (o SortOrder) Label() string {
	switch o {
	case SortAsc:
		return "A-Z"
	case SortDesc:
		return "Z-A"
	default:
		return "default"
	}
}

// String returns the string representation of the order.
func (o SortOrder) String() string {
	return string(o)
}
