package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// MessageKind selects the color of the status message.
type MessageKind int

const (
	// MessageInfo is a neutral message.
	MessageInfo MessageKind = iota
	// MessageSuccess is a confirmation.
	MessageSuccess
	// MessageWarning is a non-fatal problem, such as a failed save.
	MessageWarning
	// MessageError is a failure.
	MessageError
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	SortLabel     string // "A-Z", "Z-A" or "default"
	Shown         int
	Total         int
	Search        string
	Loading       bool
	Message       string
	MessageKind   MessageKind
	ShowShortcuts bool
	Shortcuts     []Shortcut
}

// StatusBar displays list state, the latest message and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			SortLabel:     "default",
			ShowShortcuts: true,
			Shortcuts:     BrowseShortcuts,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetSortLabel sets the sort indicator.
func (s *StatusBar) SetSortLabel(label string) {
	s.data.SortLabel = label
}

// SetCounts sets how many recipes are shown out of the total.
func (s *StatusBar) SetCounts(shown, total int) {
	s.data.Shown = shown
	s.data.Total = total
}

// SetSearch sets the active search text.
func (s *StatusBar) SetSearch(search string) {
	s.data.Search = search
}

// SetLoading sets whether a fetch is pending.
func (s *StatusBar) SetLoading(loading bool) {
	s.data.Loading = loading
}

// SetMessage sets the status message.
func (s *StatusBar) SetMessage(message string, kind MessageKind) {
	s.data.Message = message
	s.data.MessageKind = kind
}

// ClearMessage removes the status message.
func (s *StatusBar) ClearMessage() {
	s.data.Message = ""
	s.data.MessageKind = MessageInfo
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	left := label.Render("Sort: ") + value.Render(s.data.SortLabel) + sep

	if s.data.Loading {
		left += lipgloss.NewStyle().Foreground(styles.Secondary).Render("◐ loading")
	} else {
		left += label.Render("Shown: ") +
			lipgloss.NewStyle().Foreground(styles.Secondary).Render(fmt.Sprintf("%d/%d", s.data.Shown, s.data.Total))
	}

	if s.data.Search != "" {
		left += sep + label.Render("Search: ") + value.Render(s.data.Search)
	}

	if s.data.Message != "" {
		left += sep + s.renderMessage()
	}

	right := ""
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		right = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := styles.StatusBarStyle

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(right)
		padding := s.width - leftWidth - rightWidth - 2
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	return containerStyle.Render(left + "  " + right)
}

func (s *StatusBar) renderMessage() string {
	style := lipgloss.NewStyle().Italic(true)
	switch s.data.MessageKind {
	case MessageSuccess:
		style = style.Foreground(styles.Success)
	case MessageWarning:
		style = style.Foreground(styles.Warning)
	case MessageError:
		style = style.Foreground(styles.Error)
	default:
		style = style.Foreground(styles.MutedLight)
	}
	return style.Render(s.data.Message)
}
