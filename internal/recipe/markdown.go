package recipe

import (
	"fmt"
	"strings"
)

// Markdown renders the recipe as a markdown document for the detail view.
func Markdown(r Recipe) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(r.Name)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("**Rating:** %.1f ★  ·  **Difficulty:** %s\n", r.Rating, r.Difficulty))
	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = "`" + t + "`"
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(tags, " "))
		sb.WriteString("\n")
	}

	if len(r.Ingredients) > 0 {
		sb.WriteString("\n## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			sb.WriteString("- ")
			sb.WriteString(ing)
			sb.WriteString("\n")
		}
	}

	if len(r.Instructions) > 0 {
		sb.WriteString("\n## Instructions\n\n")
		for i, step := range r.Instructions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}

	if r.Image != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Image)
		sb.WriteString("\n")
	}

	return sb.String()
}
