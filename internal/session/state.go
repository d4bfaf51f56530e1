package session

import (
	"strings"
	"sync"
)

// Auth is the placeholder authentication status. Nothing is verified against
// a backend.
type Auth struct {
	authenticated bool
	username      string
}

// IsAuthenticated reports whether a user is logged in.
func (a Auth) IsAuthenticated() bool {
	return a.authenticated
}

// Username returns the logged-in user's display name, or "".
func (a Auth) Username() string {
	return a.username
}

// ChangeKind identifies what changed in State.
type ChangeKind int

const (
	// ThemeChanged is sent after the theme changed.
	ThemeChanged ChangeKind = iota
	// AuthChanged is sent after login or logout.
	AuthChanged
)

// Change is delivered to subscribers.
type Change struct {
	Kind  ChangeKind
	Theme Theme
	Auth  Auth
}

// State is the session-scoped application state. It is created once per run
// and passed explicitly to whatever needs it.
type State struct {
	mu          sync.RWMutex
	theme       Theme
	auth        Auth
	subscribers []func(Change)
}

// NewState creates a State with the given starting theme.
func NewState(theme Theme) *State {
	if !theme.IsValid() {
		theme = DefaultTheme
	}
	return &State{theme: theme}
}

// Theme returns the active theme.
func (s *State) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme sets the theme. Invalid values are ignored.
func (s *State) SetTheme(t Theme) {
	if !t.IsValid() {
		return
	}
	s.mu.Lock()
	if s.theme == t {
		s.mu.Unlock()
		return
	}
	s.theme = t
	s.mu.Unlock()
	s.notify(ThemeChanged)
}

// ToggleTheme flips light/dark and returns the new theme.
func (s *State) ToggleTheme() Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	t := s.theme
	s.mu.Unlock()
	s.notify(ThemeChanged)
	return t
}

// Auth returns the current auth status.
func (s *State) Auth() Auth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// IsAuthenticated reports whether a user is logged in.
func (s *State) IsAuthenticated() bool {
	return s.Auth().IsAuthenticated()
}

// Login marks the session as authenticated under username.
// A blank username falls back to "guest".
func (s *State) Login(username string) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = "guest"
	}
	s.mu.Lock()
	s.auth = Auth{authenticated: true, username: username}
	s.mu.Unlock()
	s.notify(AuthChanged)
}

// Logout clears the auth status. Logging out twice is a no-op.
func (s *State) Logout() {
	s.mu.Lock()
	if !s.auth.authenticated {
		s.mu.Unlock()
		return
	}
	s.auth = Auth{}
	s.mu.Unlock()
	s.notify(AuthChanged)
}

// Subscribe registers fn to be called after each change.
func (s *State) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *State) notify(kind ChangeKind) {
	s.mu.RLock()
	c := Change{Kind: kind, Theme: s.theme, Auth: s.auth}
	subs := make([]func(Change), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(c)
	}
}
