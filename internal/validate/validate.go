// Package validate holds the client-side checks for the login and
// registration forms. Every function is pure and cheap enough to run on each
// keystroke.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Minimum lengths, counted in characters.
const (
	MinUsernameLength      = 2
	MinPasswordLength      = 8
	MinLoginPasswordLength = 6
)

// User-facing messages.
const (
	MsgInvalidEmail         = "Please enter valid email address"
	MsgShortUsername        = "Username must be at least 2 characters"
	MsgPasswordRequirements = "Complete Password Requirements"
	MsgPasswordMismatch     = "Passwords do not match"
	MsgShortLoginPassword   = "Password must be at least 6 characters"
)

var (
	emailPattern = regexp.MustCompile(`^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	numberPattern  = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[\W_]`)
)

// Email reports whether s looks like an email address. Matching is done on
// the lowercased input.
func Email(s string) bool {
	return emailPattern.MatchString(strings.ToLower(s))
}

// Username reports whether s is long enough to be a username.
func Username(s string) bool {
	return utf8.RuneCountInString(s) >= MinUsernameLength
}

// LoginPassword reports whether s is long enough for the login form.
func LoginPassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinLoginPasswordLength
}

// ConfirmPassword reports whether the confirmation matches exactly.
func ConfirmPassword(password, confirm string) bool {
	return password == confirm
}

// PasswordChecks is the per-requirement result for a registration password.
type PasswordChecks struct {
	MinLength bool
	Uppercase bool
	Lowercase bool
	Number    bool
	Special   bool
}

// CheckPassword evaluates each registration password requirement.
func CheckPassword(s string) PasswordChecks {
	return PasswordChecks{
		MinLength: utf8.RuneCountInString(s) >= MinPasswordLength,
		Uppercase: upperPattern.MatchString(s),
		Lowercase: lowerPattern.MatchString(s),
		Number:    numberPattern.MatchString(s),
		Special:   specialPattern.MatchString(s),
	}
}

// Valid reports whether every requirement is met.
func (c PasswordChecks) Valid() bool {
	return c.MinLength && c.Uppercase && c.Lowercase && c.Number && c.Special
}

// Requirement is one labelled password check.
type Requirement struct {
	Label string
	Met   bool
}

// Items lists the requirements in display order.
func (c PasswordChecks) Items() []Requirement {
	return []Requirement{
		{Label: "At least 8 characters", Met: c.MinLength},
		{Label: "One uppercase letter", Met: c.Uppercase},
		{Label: "One lowercase letter", Met: c.Lowercase},
		{Label: "One number", Met: c.Number},
		{Label: "One special character", Met: c.Special},
	}
}

// Met returns how many requirements are satisfied.
func (c PasswordChecks) Met() int {
	n := 0
	for _, item := range c.Items() {
		if item.Met {
			n++
		}
	}
	return n
}
