// Package styles provides Lip Gloss styles for the cookbook TUI.
//
// The style variables are package-level so components can use them directly.
// Apply swaps the palette and rebuilds every style, so views rendered after a
// theme toggle pick up the new colors.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/session"
)

// Palette is a complete color scheme.
type Palette struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
	Muted       lipgloss.Color
	MutedLight  lipgloss.Color
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	BorderColor lipgloss.Color
	// OnPrimary is text drawn on a Primary background.
	OnPrimary lipgloss.Color
}

// DarkPalette is used for the dark theme.
var DarkPalette = Palette{
	Name:        "dark",
	Primary:     lipgloss.Color("#F97316"), // Orange
	Secondary:   lipgloss.Color("#06B6D4"), // Cyan
	Success:     lipgloss.Color("#10B981"), // Green
	Warning:     lipgloss.Color("#F59E0B"), // Amber
	Error:       lipgloss.Color("#EF4444"), // Red
	Muted:       lipgloss.Color("#6B7280"), // Gray
	MutedLight:  lipgloss.Color("#9CA3AF"), // Light Gray
	Background:  lipgloss.Color("#1F2937"), // Dark Gray
	Foreground:  lipgloss.Color("#F9FAFB"), // White
	BorderColor: lipgloss.Color("#374151"), // Border Gray
	OnPrimary:   lipgloss.Color("#111827"),
}

// LightPalette is used for the light theme.
var LightPalette = Palette{
	Name:        "light",
	Primary:     lipgloss.Color("#C2410C"), // Burnt orange
	Secondary:   lipgloss.Color("#0E7490"), // Teal
	Success:     lipgloss.Color("#047857"),
	Warning:     lipgloss.Color("#B45309"),
	Error:       lipgloss.Color("#B91C1C"),
	Muted:       lipgloss.Color("#6B7280"),
	MutedLight:  lipgloss.Color("#4B5563"),
	Background:  lipgloss.Color("#F3F4F6"),
	Foreground:  lipgloss.Color("#111827"),
	BorderColor: lipgloss.Color("#D1D5DB"),
	OnPrimary:   lipgloss.Color("#FFFFFF"),
}

// Current is the active palette.
var Current = DarkPalette

// Color palette for the TUI.
var (
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
	Muted       lipgloss.Color
	MutedLight  lipgloss.Color
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	BorderColor lipgloss.Color
	OnPrimary   lipgloss.Color
)

// Header styles.
var (
	// HeaderStyle is the main header container.
	HeaderStyle lipgloss.Style
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle lipgloss.Style
	// HeaderValueStyle is for header values.
	HeaderValueStyle lipgloss.Style
	// TitleStyle is for the application title.
	TitleStyle lipgloss.Style
	// TabActiveStyle is the selected navigation tab.
	TabActiveStyle lipgloss.Style
	// TabStyle is an unselected navigation tab.
	TabStyle lipgloss.Style
)

// Recipe list styles.
var (
	// RecipeNameStyle is a recipe name in a list row.
	RecipeNameStyle lipgloss.Style
	// RecipeMetaStyle is the rating/difficulty column.
	RecipeMetaStyle lipgloss.Style
	// SelectedRowStyle highlights the row under the cursor.
	SelectedRowStyle lipgloss.Style
	// SavedMarker marks saved recipes.
	SavedMarker string
	// UnsavedMarker is the placeholder for unsaved recipes.
	UnsavedMarker string
	// RatingStyle is the star rating.
	RatingStyle lipgloss.Style
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle lipgloss.Style
	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle lipgloss.Style
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle lipgloss.Style
	// ErrorTextStyle is for error messages.
	ErrorTextStyle lipgloss.Style
	// SuccessTextStyle is for success messages.
	SuccessTextStyle lipgloss.Style
	// WarningTextStyle is for warning messages.
	WarningTextStyle lipgloss.Style
	// EmptyStateStyle is for "nothing here" placeholders.
	EmptyStateStyle lipgloss.Style
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle lipgloss.Style
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle lipgloss.Style
	// HelpStyle is for help text.
	HelpStyle lipgloss.Style
)

// Form component styles.
var (
	// FormTitleStyle is for form titles.
	FormTitleStyle lipgloss.Style
	// FormLabelStyle is for form field labels.
	FormLabelStyle lipgloss.Style
	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle lipgloss.Style
	// FormInputStyle is for form text inputs (unfocused).
	FormInputStyle lipgloss.Style
	// FormInputFocusedStyle is for focused form text inputs.
	FormInputFocusedStyle lipgloss.Style
	// FormErrorStyle is for inline field errors.
	FormErrorStyle lipgloss.Style
	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle lipgloss.Style
	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle lipgloss.Style
	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle lipgloss.Style
	// ButtonPrimaryUnfocusedStyle is for primary buttons (unfocused).
	ButtonPrimaryUnfocusedStyle lipgloss.Style
	// ButtonSecondaryStyle is for secondary buttons (focused).
	ButtonSecondaryStyle lipgloss.Style
	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle lipgloss.Style
	// ButtonDangerStyle is for danger buttons (focused).
	ButtonDangerStyle lipgloss.Style
	// ButtonDangerUnfocusedStyle is for danger buttons (unfocused).
	ButtonDangerUnfocusedStyle lipgloss.Style
	// ButtonDisabledStyle is for buttons that cannot be activated.
	ButtonDisabledStyle lipgloss.Style
)

func init() {
	Apply(DarkPalette)
}

// PaletteFor returns the palette for a theme.
func PaletteFor(t session.Theme) Palette {
	if t == session.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// ApplyTheme switches the active palette to match t.
func ApplyTheme(t session.Theme) {
	Apply(PaletteFor(t))
}

// GlamourStyle returns the glamour standard style name for the active palette.
func GlamourStyle() string {
	if Current.Name == LightPalette.Name {
		return "light"
	}
	return "dark"
}

// Apply sets p as the active palette and rebuilds all styles.
func Apply(p Palette) {
	Current = p

	Primary = p.Primary
	Secondary = p.Secondary
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	MutedLight = p.MutedLight
	Background = p.Background
	Foreground = p.Foreground
	BorderColor = p.BorderColor
	OnPrimary = p.OnPrimary

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(OnPrimary).
		Background(Primary).
		Padding(0, 1)
	HeaderLabelStyle = lipgloss.NewStyle().
		Foreground(MutedLight)
	HeaderValueStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Bold(true)
	TitleStyle = lipgloss.NewStyle().
		Foreground(OnPrimary).
		Background(Primary).
		Bold(true).
		Padding(0, 1)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)
	TabStyle = lipgloss.NewStyle().
		Foreground(MutedLight).
		Padding(0, 1)

	RecipeNameStyle = lipgloss.NewStyle().
		Foreground(Foreground)
	RecipeMetaStyle = lipgloss.NewStyle().
		Foreground(MutedLight)
	SelectedRowStyle = lipgloss.NewStyle().
		Background(Background).
		Bold(true)
	SavedMarker = lipgloss.NewStyle().
		Foreground(Primary).
		Render("♥")
	UnsavedMarker = lipgloss.NewStyle().
		Foreground(Muted).
		Render("·")
	RatingStyle = lipgloss.NewStyle().
		Foreground(Warning)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)
	FocusedBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	MutedTextStyle = lipgloss.NewStyle().
		Foreground(Muted)
	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(Error)
	SuccessTextStyle = lipgloss.NewStyle().
		Foreground(Success)
	WarningTextStyle = lipgloss.NewStyle().
		Foreground(Warning)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(MutedLight).
		Background(Background).
		Padding(0, 1)
	KeyStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Bold(true).
		Padding(0, 1)
	FormLabelStyle = lipgloss.NewStyle().
		Foreground(MutedLight)
	FormLabelFocusedStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	FormInputStyle = lipgloss.NewStyle().
		Foreground(MutedLight).
		Padding(0, 1)
	FormInputFocusedStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Background).
		Padding(0, 1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Italic(true)
	CheckboxCheckedStyle = lipgloss.NewStyle().
		Foreground(Success)
	CheckboxUncheckedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	ButtonPrimaryStyle = lipgloss.NewStyle().
		Foreground(OnPrimary).
		Background(Primary).
		Bold(true).
		Padding(0, 2)
	ButtonPrimaryUnfocusedStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
	ButtonSecondaryStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Secondary).
		Bold(true).
		Padding(0, 2)
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
		Foreground(MutedLight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
	ButtonDangerStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Error).
		Bold(true).
		Padding(0, 2)
	ButtonDangerUnfocusedStyle = lipgloss.NewStyle().
		Foreground(Error).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Error).
		Padding(0, 1)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)
}
