package errors

import (
	"fmt"
	"strings"
)

// ConfigParseError wraps a config file that exists but could not be read
// or decoded.
func ConfigParseError(path string, cause error) *CookbookError {
	return &CookbookError{
		Kind:    ErrConfig,
		Message: "cannot read " + path,
		Cause:   cause,
		Details: map[string]string{"path": path},
		Suggestion: `The file must be YAML indented with spaces.
Start over from the defaults with: cookbook init --force`,
	}
}

// ConfigMissing is returned when --config names a file that does not exist.
func ConfigMissing(path string) *CookbookError {
	return &CookbookError{
		Kind:       ErrConfig,
		Message:    "no config file at " + path,
		Details:    map[string]string{"path": path},
		Suggestion: fmt.Sprintf("Create one with: cookbook init --config %s", path),
	}
}

// ConfigValidationError reports a single bad setting. options, when given,
// lists the accepted values.
func ConfigValidationError(field, message string, options []string) *CookbookError {
	hint := fmt.Sprintf("Edit %s in config.yaml", field)
	if len(options) > 0 {
		hint += " (one of: " + strings.Join(options, ", ") + ")"
	}
	return &CookbookError{
		Kind:       ErrConfig,
		Message:    field + " " + message,
		Details:    map[string]string{"field": field},
		Suggestion: hint,
	}
}
