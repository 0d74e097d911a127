package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/platform/logger"
	"github.com/tealfox/quizforge/internal/store"
)

// PostgresSessionStore implements store.SessionStore backed by the
// sessions table.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SessionStore = (*PostgresSessionStore)(nil)

// NewPostgresSessionStore creates a session store over db, which may be a
// connection pool or a transaction. A nil logger falls back to
// slog.Default().
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) (*PostgresSessionStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}, nil
}

// Create saves a new session row.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO sessions (id, source_name, source_text, credential, summary, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.SourceName,
		session.SourceText,
		session.Credential,
		session.Summary,
		session.Status,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate session id during create",
				slog.String("session_id", session.ID.String()))
			return fmt.Errorf("%w: session %s", store.ErrDuplicate, session.ID)
		}
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}

	log.Info("session created",
		slog.String("session_id", session.ID.String()),
		slog.String("source_name", session.SourceName))
	return nil
}

// GetByID retrieves a session row by id.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, source_name, source_text, credential, summary, status, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`

	var session domain.Session
	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.SourceName,
		&session.SourceText,
		&session.Credential,
		&session.Summary,
		&status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("session not found", slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get session by id",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, MapError(err)
	}

	session.Status = domain.SessionStatus(status)
	return &session, nil
}

// Update overwrites the mutable fields of an existing session row.
func (s *PostgresSessionStore) Update(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during update",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE sessions
		SET source_name = $1, source_text = $2, credential = $3, summary = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		session.SourceName,
		session.SourceText,
		session.Credential,
		session.Summary,
		session.Status,
		time.Now().UTC(),
		session.ID,
	)
	if err != nil {
		log.Error("failed to update session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "session"); err != nil {
		return store.ErrSessionNotFound
	}

	log.Info("session updated", slog.String("session_id", session.ID.String()))
	return nil
}

// UpdateSummary overwrites the session's summary slot and marks the row
// summarized in a single statement.
func (s *PostgresSessionStore) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE sessions
		SET summary = $1, status = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		summary,
		domain.SessionStatusSummarized,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update session summary",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "session"); err != nil {
		return store.ErrSessionNotFound
	}

	log.Info("session summary persisted",
		slog.String("session_id", id.String()),
		slog.Int("summary_chars", len(summary)))
	return nil
}
