package errors

import (
	"fmt"
	"net/http"
)

// FetchFailed creates an error for a recipe request that never got a response.
func FetchFailed(url string, cause error) *CookbookError {
	err := &CookbookError{
		Kind:    ErrNetwork,
		Message: "failed to fetch recipes",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify internet connectivity
  2. Check if a VPN or firewall is blocking access
  3. Point api.base_url in config.yaml at a reachable endpoint`,
	}
	if url != "" {
		err.Details = map[string]string{"url": url}
	}
	return err
}

// BadStatus creates an error for a non-2xx API response.
func BadStatus(url string, status int) *CookbookError {
	return &CookbookError{
		Kind:    ErrNetwork,
		Message: fmt.Sprintf("recipe API returned %d %s", status, http.StatusText(status)),
		Details: map[string]string{
			"url":    url,
			"status": fmt.Sprintf("%d", status),
		},
		Suggestion: "The recipe API is unavailable or the URL is wrong. Try again later or check api.base_url.",
	}
}

// DecodeFailed creates an error for a response body that is not a recipe envelope.
func DecodeFailed(url string, cause error) *CookbookError {
	return &CookbookError{
		Kind:    ErrParse,
		Message: "failed to decode recipe response",
		Cause:   cause,
		Details: map[string]string{"url": url},
		Suggestion: `The endpoint must return JSON shaped like {"recipes": [...]}.`,
	}
}

// IsRetryable returns true if the error is likely transient and retrying may succeed.
// The fetcher itself never retries; the TUI uses this to word its refresh hint.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if ce, ok := As(err); ok {
		return ce.Kind == ErrNetwork
	}
	return false
}

// IsUserError returns true if the error is due to user input or misconfiguration.
func IsUserError(err error) bool {
	if ce, ok := As(err); ok {
		switch ce.Kind {
		case ErrConfig, ErrValidation:
			return true
		default:
			return false
		}
	}
	return false
}
