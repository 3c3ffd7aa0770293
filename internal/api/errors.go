package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The client distinguishes four failure kinds: input rejected before any
// request went out (ValidationError), an authentication operation the
// server refused (AuthError), a non-2xx response on a data operation
// (FetchError), and a transport failure with no response at all
// (ConnectionError). Nothing is retried; every error is surfaced to the
// caller as-is.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// serverMessage extracts a human-readable message from an error response:
// the JSON "message" field when present, otherwise the raw body, otherwise
// a generic fallback.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return "request failed"
}
