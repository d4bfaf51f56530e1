// Package errors defines the categorized errors cookbook shows to users.
// Each error has a Kind for errors.Is checks, and may carry details and a
// suggestion that Format prints under the message.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrConfig     = errors.New("configuration error")
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("parse error")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// CookbookError is a categorized error with optional context for display.
type CookbookError struct {
	Kind       error
	Message    string
	Suggestion string
	Cause      error
	// Details are key/value facts such as a URL or a config field.
	Details map[string]string
}

func (e *CookbookError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap exposes Cause, or Kind when there is no cause.
func (e *CookbookError) Unwrap() error {
	if e.Cause == nil {
		return e.Kind
	}
	return e.Cause
}

// Is matches the error's Kind.
func (e *CookbookError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format renders the message, then sorted details, then the suggestion.
// The result ends with a newline.
func (e *CookbookError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Error())

	if len(e.Details) > 0 {
		b.WriteString("\nDetails:\n")
		for _, k := range slices.Sorted(maps.Keys(e.Details)) {
			fmt.Fprintf(&b, "  %s: %s\n", k, e.Details[k])
		}
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n💡 Suggestion: %s\n", e.Suggestion)
	}
	return b.String()
}

// WithDetails records key=value and returns e.
func (e *CookbookError) WithDetails(key, value string) *CookbookError {
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	e.Details[key] = value
	return e
}

// WithCause sets Cause and returns e.
func (e *CookbookError) WithCause(cause error) *CookbookError {
	e.Cause = cause
	return e
}

func New(kind error, message string) *CookbookError {
	return &CookbookError{Kind: kind, Message: message}
}

// Wrap categorizes err under kind.
func Wrap(err error, kind error, message string) *CookbookError {
	return &CookbookError{Kind: kind, Message: message, Cause: err}
}

func WithSuggestion(kind error, message, suggestion string) *CookbookError {
	return &CookbookError{Kind: kind, Message: message, Suggestion: suggestion}
}

// As finds the first *CookbookError in err's chain.
func As(err error) (*CookbookError, bool) {
	var ce *CookbookError
	ok := errors.As(err, &ce)
	return ce, ok
}
