package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/domain"
)

// SessionStore defines the interface for session persistence. The
// session record carries the summary output slot; UpdateSummary is the
// slot's single write operation and has overwrite, last-writer-wins
// semantics.
type SessionStore interface {
	// Create saves a new session to the store.
	// Returns validation errors from the domain Session if data is invalid.
	Create(ctx context.Context, session *domain.Session) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// Update saves changes to an existing session.
	// Returns ErrSessionNotFound if the session does not exist.
	Update(ctx context.Context, session *domain.Session) error

	// UpdateSummary overwrites the session's summary slot and marks the
	// session summarized. Returns ErrSessionNotFound if the session
	// does not exist.
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error
}
