package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// Shortcut is one key and what it does.
type Shortcut struct {
	Key  string
	Desc string
}

func (s Shortcut) hint() string {
	return styles.KeyStyle.Render(s.Key) + styles.HelpStyle.Render(":"+s.Desc)
}

// ShortcutBar renders a row of key hints.
type ShortcutBar struct {
	items    []Shortcut
	width    int
	centered bool
}

// NewShortcutBar returns a bar showing shortcuts in order.
func NewShortcutBar(shortcuts ...Shortcut) *ShortcutBar {
	return &ShortcutBar{items: shortcuts}
}

func (s *ShortcutBar) SetShortcuts(shortcuts ...Shortcut) { s.items = shortcuts }
func (s *ShortcutBar) SetWidth(width int)                 { s.width = width }

// SetCentered centers the hints within the bar width. It has no effect
// while the width is zero.
func (s *ShortcutBar) SetCentered(centered bool) { s.centered = centered }

// View joins the hints with a muted divider.
func (s *ShortcutBar) View() string {
	if len(s.items) == 0 {
		return ""
	}
	hints := make([]string, len(s.items))
	for i, sc := range s.items {
		hints[i] = sc.hint()
	}
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	row := strings.Join(hints, sep)

	if !s.centered || s.width <= 0 {
		return row
	}
	return lipgloss.PlaceHorizontal(s.width, lipgloss.Center, row)
}

// Per-screen shortcut sets shown in the status bar.
var (
	BrowseShortcuts = []Shortcut{
		{"/", "search"}, {"o", "sort"}, {"s", "save"},
		{"Enter", "open"}, {"?", "help"}, {"q", "quit"},
	}
	SearchShortcuts = []Shortcut{{"Enter", "done"}, {"Esc", "clear"}}
	SavedShortcuts  = []Shortcut{
		{"s", "remove"}, {"Enter", "open"}, {"1", "browse"},
		{"?", "help"}, {"q", "quit"},
	}
	DetailShortcuts = []Shortcut{{"↑↓", "scroll"}, {"s", "save"}, {"Esc", "back"}}
	FormShortcuts   = []Shortcut{{"Tab", "next"}, {"Enter", "submit"}, {"Esc", "cancel"}}
)
