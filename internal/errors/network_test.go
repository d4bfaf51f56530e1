package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchFailed(t *testing.T) {
	cause := errors.New("connection refused")
	err := FetchFailed("https://api.example.com/recipes", cause)

	if !errors.Is(err, ErrNetwork) {
		t.Error("FetchFailed should return ErrNetwork")
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Should wrap the cause")
	}
	if err.Details["url"] != "https://api.example.com/recipes" {
		t.Error("Should include url in details")
	}
	if !strings.Contains(err.Suggestion, "VPN") {
		t.Error("Suggestion should mention common network issues")
	}
}

func TestFetchFailed_NoURL(t *testing.T) {
	err := FetchFailed("", nil)
	if err.Details != nil {
		t.Error("Should not include details when url is empty")
	}
}

func TestBadStatus(t *testing.T) {
	err := BadStatus("https://x/recipes", 503)

	if !errors.Is(err, ErrNetwork) {
		t.Error("BadStatus should return ErrNetwork")
	}
	if !strings.Contains(err.Message, "503 Service Unavailable") {
		t.Errorf("Message = %q, should include status", err.Message)
	}
	if err.Details["status"] != "503" {
		t.Error("Details should include status code")
	}
}

func TestDecodeFailed(t *testing.T) {
	err := DecodeFailed("https://x/recipes", errors.New("unexpected EOF"))

	if !errors.Is(err, ErrParse) {
		t.Error("DecodeFailed should return ErrParse")
	}
	if !strings.Contains(err.Suggestion, "recipes") {
		t.Error("Suggestion should describe the expected envelope")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", FetchFailed("", nil), true},
		{"wrapped network", fmt.Errorf("list: %w", BadStatus("u", 500)), true},
		{"parse", DecodeFailed("u", nil), false},
		{"plain", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUserError(t *testing.T) {
	if !IsUserError(InvalidInput("email", "bad email")) {
		t.Error("validation errors are user errors")
	}
	if !IsUserError(ConfigValidationError("ui.theme", "bad", nil)) {
		t.Error("config errors are user errors")
	}
	if IsUserError(StorageWriteFailed("recipes", nil)) {
		t.Error("storage errors are not user errors")
	}
	if IsUserError(errors.New("plain")) {
		t.Error("plain errors are not user errors")
	}
}
