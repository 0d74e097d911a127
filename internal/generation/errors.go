package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by Invoker implementations.
var (
	// ErrMissingCredential is returned when a call is attempted without
	// an API credential. No network I/O happens in that case.
	ErrMissingCredential = errors.New("api credential is required")

	// ErrAPICall is the sentinel matched by every APICallError: the
	// external service failed permanently, either with a non-retryable
	// status, an empty or blocked response envelope, or by exhausting
	// all retry attempts.
	ErrAPICall = errors.New("generative api call failed")
)

// APICallError carries the diagnostics of a failed external call: the
// HTTP status (0 when the failure was not an HTTP error) and the raw
// response body or block reason.
type APICallError struct {
	// StatusCode is the HTTP status of the final failed attempt.
	StatusCode int
	// Body is the raw response body, or the block/feedback reason for
	// an empty response envelope.
	Body string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface for APICallError.
func (e *APICallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generative api call failed with status %d: %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("generative api call failed: %v", e.Err)
	}
	return fmt.Sprintf("generative api call failed: %s", e.Body)
}

// Unwrap makes every APICallError match ErrAPICall via errors.Is, and
// exposes the underlying error when there is one.
func (e *APICallError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrAPICall, e.Err}
	}
	return []error{ErrAPICall}
}
