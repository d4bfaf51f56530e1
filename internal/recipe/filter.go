package recipe

import "strings"

// Filter returns the recipes whose name contains search as a case-insensitive
// substring, preserving input order. An empty search returns recipes unfiltered.
func Filter(recipes []Recipe, search string) []Recipe {
	if search == "" {
		return recipes
	}

	needle := strings.ToLower(search)
	matches := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, r)
		}
	}
	return matches
}
