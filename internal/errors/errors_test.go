package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCookbookError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CookbookError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrStorage, "disk full"),
			expected: "disk full",
		},
		{
			name: "with cause",
			err: &CookbookError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCookbookError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrNetwork, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrParse, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrParse) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestCookbookError_Is(t *testing.T) {
	err := Wrap(errors.New("boom"), ErrStorage, "write failed")

	if !errors.Is(err, ErrStorage) {
		t.Error("errors.Is should match the kind")
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestCookbookError_Format(t *testing.T) {
	err := WithSuggestion(ErrConfig, "bad config", "fix it").
		WithDetails("path", "/tmp/config.yaml").
		WithDetails("field", "ui.theme")

	out := err.Format()
	for _, want := range []string{"Error: bad config", "Details:", "field: ui.theme", "path: /tmp/config.yaml", "Suggestion: fix it"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	// Details are sorted by key.
	if strings.Index(out, "field:") > strings.Index(out, "path:") {
		t.Error("Format() should list details in key order")
	}
}

func TestAs(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), New(ErrNotFound, "missing"))
	ce, ok := As(wrapped)
	if !ok {
		t.Fatal("As should find the CookbookError in the chain")
	}
	if ce.Kind != ErrNotFound {
		t.Errorf("Kind = %v, want ErrNotFound", ce.Kind)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should not match a plain error")
	}
}
