// Package session holds the per-run application state shared across TUI
// screens: the active color theme and the placeholder auth status.
package session

import (
	"fmt"
	"strings"
)

// Theme is the UI color scheme.
type Theme string

const (
	// ThemeLight is the light palette.
	ThemeLight Theme = "light"
	// ThemeDark is the dark palette.
	ThemeDark Theme = "dark"
)

// DefaultTheme is used when nothing is configured.
const DefaultTheme = ThemeDark

// ValidThemes lists the accepted theme names.
func ValidThemes() []string {
	return []string{string(ThemeLight), string(ThemeDark)}
}

// ParseTheme parses a theme name. The empty string yields DefaultTheme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultTheme, nil
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return DefaultTheme, fmt.Errorf("invalid theme %q: must be 'light' or 'dark'", s)
	}
}

// IsValid returns true if t is a known theme.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t != ThemeLight
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// UnmarshalText lets config decoding accept theme names.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t), nil
}
