package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", ThemeDark, false},
		{"light", ThemeLight, false},
		{" DARK ", ThemeDark, false},
		{"solarized", ThemeDark, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeLight.Toggle().Toggle())
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
}

func TestThemeUnmarshalText(t *testing.T) {
	var th Theme
	require.NoError(t, th.UnmarshalText([]byte("Light")))
	assert.Equal(t, ThemeLight, th)
	assert.Error(t, th.UnmarshalText([]byte("neon")))
}

func TestNewState_DefaultsInvalidTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, NewState("").Theme())
	assert.Equal(t, ThemeLight, NewState(ThemeLight).Theme())
}

func TestState_Theme(t *testing.T) {
	s := NewState(ThemeDark)
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	assert.Equal(t, ThemeLight, s.ToggleTheme())
	assert.Equal(t, ThemeLight, s.Theme())

	s.SetTheme(ThemeLight) // unchanged, no notification
	s.SetTheme("bogus")    // ignored
	s.SetTheme(ThemeDark)

	require.Len(t, changes, 2)
	assert.Equal(t, ThemeChanged, changes[0].Kind)
	assert.Equal(t, ThemeLight, changes[0].Theme)
	assert.Equal(t, ThemeDark, changes[1].Theme)
}

func TestState_Auth(t *testing.T) {
	s := NewState(ThemeDark)
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	assert.False(t, s.IsAuthenticated())

	s.Login("  chef  ")
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "chef", s.Auth().Username())

	s.Logout()
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Auth().Username())

	s.Login("")
	assert.Equal(t, "guest", s.Auth().Username())

	require.Len(t, changes, 3)
	assert.Equal(t, AuthChanged, changes[0].Kind)
	assert.True(t, changes[0].Auth.IsAuthenticated())
	assert.False(t, changes[1].Auth.IsAuthenticated())
}
