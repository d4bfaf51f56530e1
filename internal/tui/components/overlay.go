package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// panel is the double-bordered box both overlays are drawn in.
type panel struct {
	width  int
	accent lipgloss.Color
}

func (p panel) render(title, body, footer string) string {
	heading := lipgloss.NewStyle().
		Foreground(styles.OnPrimary).
		Background(p.accent).
		Bold(true).
		Padding(0, 1).
		Width(max(p.width-4, 10)).
		Render("  " + title)

	parts := []string{heading, "", body}
	if footer != "" {
		parts = append(parts, "", footer)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.accent).
		Padding(1, 2).
		Render(strings.Join(parts, "\n"))
}

// ConfirmAction identifies what a ConfirmDialog is asking about.
type ConfirmAction string

const (
	// ConfirmActionLogout ends the session.
	ConfirmActionLogout ConfirmAction = "logout"
	// ConfirmActionRemove deletes a recipe from the saved list.
	ConfirmActionRemove ConfirmAction = "remove"
)

// ConfirmYesMsg is sent when the user accepts the prompt.
type ConfirmYesMsg struct {
	Action ConfirmAction
}

// ConfirmNoMsg is sent when the user declines the prompt.
type ConfirmNoMsg struct{}

type prompt struct {
	action      ConfirmAction
	title       string
	message     string
	destructive bool
}

// ConfirmDialog asks a yes/no question before logging out or removing a
// saved recipe. At most one prompt is open at a time.
type ConfirmDialog struct {
	prompt *prompt
	width  int
}

// NewConfirmDialog creates a hidden ConfirmDialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{width: 50}
}

// ShowLogout asks whether to log username out.
func (c *ConfirmDialog) ShowLogout(username string) {
	c.prompt = &prompt{
		action:  ConfirmActionLogout,
		title:   "Log out?",
		message: "You are logged in as " + username + ".",
	}
}

// ShowRemove asks whether to remove the named recipe from the saved list.
func (c *ConfirmDialog) ShowRemove(recipeName string) {
	c.prompt = &prompt{
		action:      ConfirmActionRemove,
		title:       "Remove recipe?",
		message:     "Remove " + recipeName + " from your saved recipes?",
		destructive: true,
	}
}

// Hide closes the prompt without answering it.
func (c *ConfirmDialog) Hide() {
	c.prompt = nil
}

// IsVisible reports whether a prompt is open.
func (c *ConfirmDialog) IsVisible() bool {
	return c.prompt != nil
}

// Action returns the open prompt's action, or "" when hidden.
func (c *ConfirmDialog) Action() ConfirmAction {
	if c.prompt == nil {
		return ""
	}
	return c.prompt.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update answers the prompt on y/enter or n/esc and ignores other keys.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || c.prompt == nil {
		return nil
	}

	switch strings.ToLower(key.String()) {
	case "y", "enter":
		answer := ConfirmYesMsg{Action: c.prompt.action}
		c.Hide()
		return func() tea.Msg { return answer }
	case "n", "esc":
		c.Hide()
		return func() tea.Msg { return ConfirmNoMsg{} }
	}
	return nil
}

// View renders the open prompt, or "" when hidden.
func (c *ConfirmDialog) View() string {
	if c.prompt == nil {
		return ""
	}

	p := panel{width: c.width, accent: styles.Warning}
	yes := styles.ButtonPrimaryStyle
	if c.prompt.destructive {
		p.accent = styles.Error
		yes = styles.ButtonDangerStyle
	}

	message := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(max(c.width-8, 10)).
		Render(c.prompt.message)
	buttons := yes.Render("[Y]es") + "  " + styles.ButtonSecondaryUnfocusedStyle.Render("[N]o")

	return p.render(c.prompt.title, message, buttons)
}

// ShortcutGroup is a titled block of shortcuts in the help overlay.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// HelpClosedMsg is sent when the help overlay is dismissed.
type HelpClosedMsg struct{}

// HelpOverlay lists every key binding.
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a hidden overlay showing DefaultHelpGroups.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  60,
		height: 20,
		groups: DefaultHelpGroups(),
	}
}

// DefaultHelpGroups returns the browser's key bindings.
func DefaultHelpGroups() []ShortcutGroup {
	return []ShortcutGroup{
		{"Recipes", []Shortcut{
			{"/", "Search by name"},
			{"o", "Cycle sort: default, A-Z, Z-A"},
			{"Enter", "Open recipe"},
			{"s", "Save/Remove recipe"},
			{"r", "Refresh from the server"},
		}},
		{"Navigation", []Shortcut{
			{"1", "Browse"},
			{"2", "Saved recipes"},
			{"j/↓", "Move down"},
			{"k/↑", "Move up"},
			{"g", "Go to top"},
			{"G", "Go to bottom"},
		}},
		{"Account", []Shortcut{
			{"L", "Login / Logout"},
			{"R", "Register"},
			{"t", "Toggle light/dark theme"},
		}},
		{"General", []Shortcut{
			{"?", "Toggle help"},
			{"Esc", "Back/Close"},
			{"q", "Quit"},
		}},
	}
}

// SetGroups replaces the listed shortcuts.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) { h.groups = groups }

// Groups returns the listed shortcuts.
func (h *HelpOverlay) Groups() []ShortcutGroup { return h.groups }

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *HelpOverlay) Show()           { h.visible = true }
func (h *HelpOverlay) Hide()           { h.visible = false }
func (h *HelpOverlay) Toggle()         { h.visible = !h.visible }
func (h *HelpOverlay) IsVisible() bool { return h.visible }

// Update closes the overlay on esc, ? or q.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !h.visible {
		return nil
	}
	switch key.String() {
	case "esc", "?", "q":
		h.Hide()
		return func() tea.Msg { return HelpClosedMsg{} }
	}
	return nil
}

// View renders the overlay, or "" when hidden.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	groupTitle := lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	key := lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(8)
	desc := lipgloss.NewStyle().Foreground(styles.MutedLight)

	var b strings.Builder
	for i, g := range h.groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(groupTitle.Render(g.Title))
		b.WriteString("\n")
		for _, s := range g.Shortcuts {
			b.WriteString("  " + key.Render(s.Key) + " " + desc.Render(s.Desc) + "\n")
		}
	}

	footer := lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).Render("Press ? or Esc to close")
	return panel{width: h.width, accent: styles.Primary}.render("Keyboard Shortcuts", strings.TrimRight(b.String(), "\n"), footer)
}
