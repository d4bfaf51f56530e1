package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// RecipeListItem is one row of the list.
type RecipeListItem struct {
	Recipe recipe.Recipe
	Saved  bool
}

// RecipeList is a scrollable list of recipes with saved markers.
type RecipeList struct {
	items        []RecipeListItem
	selected     int
	height       int
	width        int
	scrollStart  int
	focused      bool
	emptyMessage string
}

// NewRecipeList creates a new RecipeList component.
func NewRecipeList() *RecipeList {
	return &RecipeList{
		items:        []RecipeListItem{},
		height:       10,
		focused:      true,
		emptyMessage: "No recipes",
	}
}

// SetItems updates the list items, keeping the selection in range.
func (l *RecipeList) SetItems(items []RecipeListItem) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.updateScroll()
}

// SetRecipes builds items from recipes, marking those for which saved returns true.
func (l *RecipeList) SetRecipes(recipes []recipe.Recipe, saved func(id int) bool) {
	items := make([]RecipeListItem, len(recipes))
	for i, r := range recipes {
		items[i] = RecipeListItem{Recipe: r, Saved: saved != nil && saved(r.ID)}
	}
	l.SetItems(items)
}

// Items returns the current items.
func (l *RecipeList) Items() []RecipeListItem {
	return l.items
}

// Len returns the number of items.
func (l *RecipeList) Len() int {
	return len(l.items)
}

// SetEmptyMessage sets the text shown when there are no items.
func (l *RecipeList) SetEmptyMessage(msg string) {
	l.emptyMessage = msg
}

// EmptyMessage returns the text shown when there are no items.
func (l *RecipeList) EmptyMessage() string {
	return l.emptyMessage
}

// SetFocused sets whether the list is focused.
func (l *RecipeList) SetFocused(focused bool) {
	l.focused = focused
}

// SetSize sets both width and height.
func (l *RecipeList) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
	l.updateScroll()
}

// Selected returns the currently selected index.
func (l *RecipeList) Selected() int {
	return l.selected
}

// SelectedRecipe returns the recipe under the cursor.
func (l *RecipeList) SelectedRecipe() (recipe.Recipe, bool) {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return recipe.Recipe{}, false
	}
	return l.items[l.selected].Recipe, true
}

// MoveUp moves selection up.
func (l *RecipeList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.updateScroll()
	}
}

// MoveDown moves selection down.
func (l *RecipeList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
		l.updateScroll()
	}
}

// GoToTop moves selection to the first item.
func (l *RecipeList) GoToTop() {
	l.selected = 0
	l.updateScroll()
}

// GoToBottom moves selection to the last item.
func (l *RecipeList) GoToBottom() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
		l.updateScroll()
	}
}

// SetSelected sets the selected index.
func (l *RecipeList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
		l.updateScroll()
	}
}

// updateScroll ensures the selected item is visible.
func (l *RecipeList) updateScroll() {
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	}
	if l.selected >= l.scrollStart+l.height {
		l.scrollStart = l.selected - l.height + 1
	}
	if l.scrollStart < 0 {
		l.scrollStart = 0
	}
}

// Update handles keyboard events for navigation.
func (l *RecipeList) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.GoToTop()
		case "end", "G":
			l.GoToBottom()
		case "pgup":
			for i := 0; i < l.height; i++ {
				l.MoveUp()
			}
		case "pgdown":
			for i := 0; i < l.height; i++ {
				l.MoveDown()
			}
		}
	}
	return nil
}

// View renders the list.
func (l *RecipeList) View() string {
	if len(l.items) == 0 {
		return styles.EmptyStateStyle.Render(l.emptyMessage)
	}

	var lines []string
	endIndex := l.scrollStart + l.height
	if endIndex > len(l.items) {
		endIndex = len(l.items)
	}

	for i := l.scrollStart; i < endIndex; i++ {
		lines = append(lines, l.renderItem(l.items[i], i == l.selected))
	}

	content := strings.Join(lines, "\n")

	if l.scrollStart > 0 {
		content = "  ↑ more above\n" + content
	}
	if endIndex < len(l.items) {
		content = content + "\n  ↓ more below"
	}

	return content
}

func (l *RecipeList) renderItem(item RecipeListItem, isSelected bool) string {
	cursor := " "
	if isSelected {
		cursor = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶")
	}

	marker := styles.UnsavedMarker
	if item.Saved {
		marker = styles.SavedMarker
	}

	r := item.Recipe
	meta := styles.RatingStyle.Render(fmt.Sprintf("★ %.1f", r.Rating)) + " " +
		DifficultyBadge(r.Difficulty)

	nameWidth := l.width - lipgloss.Width(meta) - 8
	name := r.Name
	if nameWidth > 0 {
		name = truncateString(name, nameWidth)
		name = styles.RecipeNameStyle.Width(nameWidth).Render(name)
	} else {
		name = styles.RecipeNameStyle.Render(name)
	}

	line := fmt.Sprintf("%s %s %s %s", cursor, marker, name, meta)

	lineStyle := lipgloss.NewStyle()
	if isSelected && l.focused {
		lineStyle = styles.SelectedRowStyle
	}
	if l.width > 0 {
		lineStyle = lineStyle.Width(l.width)
	}

	return lineStyle.Render(line)
}

// DifficultyBadge renders a colored difficulty label.
func DifficultyBadge(d recipe.Difficulty) string {
	color := styles.MutedLight
	switch d {
	case recipe.DifficultyEasy:
		color = styles.Success
	case recipe.DifficultyMedium:
		color = styles.Warning
	case recipe.DifficultyHard:
		color = styles.Error
	}
	label := d.String()
	if label == "" {
		label = "?"
	}
	return lipgloss.NewStyle().Foreground(color).Width(6).Render(label)
}

// truncateString shortens s to maxLen runes, adding an ellipsis.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
