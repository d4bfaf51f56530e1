// Package components provides reusable TUI components for cookbook.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// Tab identifies a top-level navigation tab.
type Tab int

const (
	// TabBrowse is the recipe browser.
	TabBrowse Tab = iota
	// TabSaved is the saved recipes list.
	TabSaved
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	ActiveTab  Tab
	SavedCount int
	Theme      string
	Username   string
}

// Header is a component that displays navigation tabs, theme and user.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			ActiveTab: TabBrowse,
			Theme:     "dark",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// Data returns the current header data.
func (h *Header) Data() HeaderData {
	return h.data
}

// SetActiveTab sets the highlighted tab.
func (h *Header) SetActiveTab(tab Tab) {
	h.data.ActiveTab = tab
}

// SetSavedCount sets the number shown on the Saved tab.
func (h *Header) SetSavedCount(n int) {
	h.data.SavedCount = n
}

// SetTheme sets the theme name.
func (h *Header) SetTheme(theme string) {
	h.data.Theme = theme
}

// SetUsername sets the logged-in user. Empty means logged out.
func (h *Header) SetUsername(name string) {
	h.data.Username = name
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("🍳 COOKBOOK")

	browse := h.renderTab("1 Browse", h.data.ActiveTab == TabBrowse)
	saved := h.renderTab(fmt.Sprintf("2 Saved (%d)", h.data.SavedCount), h.data.ActiveTab == TabSaved)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	user := "not logged in"
	if h.data.Username != "" {
		user = h.data.Username
	}
	right := styles.HeaderLabelStyle.Render("Theme: ") +
		styles.HeaderValueStyle.Render(h.data.Theme) + sep +
		styles.HeaderLabelStyle.Render("User: ") +
		styles.HeaderValueStyle.Render(user)

	left := title + " " + browse + saved

	if h.width > 0 {
		gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if gap > 0 {
			return lipgloss.NewStyle().Width(h.width).Padding(0, 1).
				Render(left + strings.Repeat(" ", gap) + right)
		}
	}
	return left + sep + right
}

func (h *Header) renderTab(label string, active bool) string {
	if active {
		return styles.TabActiveStyle.Render(label)
	}
	return styles.TabStyle.Render(label)
}
