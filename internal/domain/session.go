package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the processing state of an upload session.
type SessionStatus string

// Possible session status values.
const (
	SessionStatusUploaded   SessionStatus = "uploaded"
	SessionStatusSummarized SessionStatus = "summarized"
)

// Validation failures reported by Session.Validate. All wrap
// ErrValidation so callers can match the whole class with errors.Is.
var (
	ErrEmptySessionID       = fmt.Errorf("%w: session ID cannot be empty", ErrValidation)
	ErrEmptySessionText     = fmt.Errorf("%w: session source text: %w", ErrValidation, ErrEmptyContent)
	ErrInvalidSessionStatus = fmt.Errorf("%w: invalid session status", ErrValidation)
)

// Session represents one uploaded document and everything derived from
// it. The Summary field is the single output slot the summarizer writes
// and the quiz generator reads; each new summarization run overwrites it.
// The credential is captured when the caller requests summarization so
// the quiz stage can reuse it, and is never configured process-wide.
type Session struct {
	ID         uuid.UUID     `json:"id"`
	SourceName string        `json:"source_name"`
	SourceText string        `json:"source_text"`
	Credential string        `json:"credential"`
	Summary    string        `json:"summary"`
	Status     SessionStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewSession creates a new Session for the given source document.
// It generates a new UUID, sets the status to uploaded, and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewSession(sourceName, sourceText string) (*Session, error) {
	session := &Session{
		ID:         uuid.New(),
		SourceName: sourceName,
		SourceText: sourceText,
		Status:     SessionStatusUploaded,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.SourceText == "" {
		return ErrEmptySessionText
	}

	if !isValidSessionStatus(s.Status) {
		return ErrInvalidSessionStatus
	}

	return nil
}

// SetSummary stores a new summary in the session's output slot,
// overwriting any previous one, and marks the session summarized.
func (s *Session) SetSummary(summary string) {
	s.Summary = summary
	s.Status = SessionStatusSummarized
	s.UpdatedAt = time.Now().UTC()
}

// SetCredential records the caller-supplied API credential for reuse by
// the quiz stage.
func (s *Session) SetCredential(credential string) {
	s.Credential = credential
	s.UpdatedAt = time.Now().UTC()
}

// isValidSessionStatus checks if the given status is a valid SessionStatus.
func isValidSessionStatus(status SessionStatus) bool {
	switch status {
	case SessionStatusUploaded, SessionStatusSummarized:
		return true
	default:
		return false
	}
}
