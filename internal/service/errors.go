package service

import (
	"errors"
	"fmt"

	"github.com/tealfox/quizforge/internal/store"
)

// Common sentinel errors for SessionService.
var (
	// ErrSessionNotFound indicates that the session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidUpload indicates that the uploaded file was rejected,
	// either by type, size, or content.
	ErrInvalidUpload = errors.New("invalid upload")

	// ErrSummaryNotReady indicates that the session has no summary yet,
	// so summary-dependent operations cannot run.
	ErrSummaryNotReady = errors.New("summary not ready")
)

// SessionServiceError wraps errors from the session service with context.
type SessionServiceError struct {
	// Operation is the operation that failed (e.g., "create_session").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for SessionServiceError.
func (e *SessionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("session service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SessionServiceError) Unwrap() error {
	return e.Err
}

// NewSessionServiceError creates a SessionServiceError. Known sentinel
// errors pass through directly so callers can match them with errors.Is.
func NewSessionServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionNotFound
	}

	return &SessionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
