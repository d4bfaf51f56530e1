package validate

import (
	"sort"
	"strings"
)

// Field names used as FieldErrors keys.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldConfirm  = "confirm"
)

// FieldErrors maps a field name to its user-facing message.
// An empty map means the form can be submitted.
type FieldErrors map[string]string

// OK reports whether there are no errors.
func (fe FieldErrors) OK() bool {
	return len(fe) == 0
}

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// Error joins all messages in field order, so FieldErrors can be returned as an error.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = f + ": " + fe[f]
	}
	return strings.Join(msgs, "; ")
}

// LoginForm holds the login form values.
type LoginForm struct {
	Email    string
	Password string
}

// Validate returns the errors blocking submission.
func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !Email(f.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if !LoginPassword(f.Password) {
		errs[FieldPassword] = MsgShortLoginPassword
	}
	return errs
}

// RegistrationForm holds the registration form values.
type RegistrationForm struct {
	Email    string
	Username string
	Password string
	Confirm  string
}

// Validate returns the errors blocking submission.
func (f RegistrationForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !Email(f.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if !Username(f.Username) {
		errs[FieldUsername] = MsgShortUsername
	}
	if !CheckPassword(f.Password).Valid() {
		errs[FieldPassword] = MsgPasswordRequirements
	}
	if !ConfirmPassword(f.Password, f.Confirm) {
		errs[FieldConfirm] = MsgPasswordMismatch
	}
	return errs
}
