// Package filestore implements session persistence as one JSON file per
// session under a data directory. It is the default store when no
// database URL is configured.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/store"
)

// SessionStore persists sessions as <dataDir>/<session-id>.json files. A
// single mutex serializes all file access; the store is safe for
// concurrent use but not for multiple processes sharing one directory.
type SessionStore struct {
	dataDir string
	logger  *slog.Logger
	mu      sync.Mutex
}

var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates the data directory if needed and returns a
// file-backed session store.
func NewSessionStore(dataDir string, logger *slog.Logger) (*SessionStore, error) {
	if dataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %q: %w", dataDir, err)
	}
	return &SessionStore{
		dataDir: dataDir,
		logger:  logger.With("component", "filestore"),
	}, nil
}

func (s *SessionStore) path(id uuid.UUID) string {
	return filepath.Join(s.dataDir, id.String()+".json")
}

// Create validates and writes a new session file.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path(session.ID)); err == nil {
		return store.NewStoreError("session", "create", "session already exists", nil)
	}
	return s.write(session)
}

// GetByID reads and decodes the session file for id.
func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

// Update validates and overwrites an existing session file.
func (s *SessionStore) Update(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.read(session.ID); err != nil {
		return err
	}
	return s.write(session)
}

// UpdateSummary overwrites the summary slot of an existing session and
// marks it summarized.
func (s *SessionStore) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.read(id)
	if err != nil {
		return err
	}
	session.SetSummary(summary)
	return s.write(session)
}

// read loads a session file. Callers must hold the mutex.
func (s *SessionStore) read(id uuid.UUID) (*domain.Session, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrSessionNotFound
		}
		return nil, store.NewStoreError("session", "read", "failed to read session file", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, store.NewStoreError("session", "read", "failed to decode session file", err)
	}
	return &session, nil
}

// write encodes the session to a temp file and renames it into place so a
// crash mid-write never leaves a truncated session. Callers must hold the
// mutex.
func (s *SessionStore) write(session *domain.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return store.NewStoreError("session", "write", "failed to encode session", err)
	}

	target := s.path(session.ID)
	tmp, err := os.CreateTemp(s.dataDir, "session-*.tmp")
	if err != nil {
		return store.NewStoreError("session", "write", "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return store.NewStoreError("session", "write", "failed to write session file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return store.NewStoreError("session", "write", "failed to close session file", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return store.NewStoreError("session", "write", "failed to replace session file", err)
	}
	return nil
}
