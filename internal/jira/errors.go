package jira

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a request that exceeded the client-side deadline.
// Callers can distinguish it from other failures with errors.Is.
var ErrTimeout = errors.New("request timed out")

// APIError represents a non-2xx HTTP response. Body is the raw response
// text; it is not parsed because error bodies are not guaranteed to be
// JSON.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira api status=%d body=%s", e.StatusCode, e.Body)
}
