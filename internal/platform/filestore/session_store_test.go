package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/platform/filestore"
	"github.com/tealfox/quizforge/internal/store"
)

func newTestStore(t *testing.T) *filestore.SessionStore {
	t.Helper()
	s, err := filestore.NewSessionStore(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func newTestSession(t *testing.T) *domain.Session {
	t.Helper()
	session, err := domain.NewSession("lecture.pdf", "Extracted lecture text.")
	require.NoError(t, err)
	return session
}

func TestNewSessionStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := filestore.NewSessionStore(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSessionStoreEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := filestore.NewSessionStore("", nil)
	assert.Error(t, err)
}

func TestCreateAndGetByID(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	session := newTestSession(t)

	require.NoError(t, s.Create(ctx, session))

	got, err := s.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "lecture.pdf", got.SourceName)
	assert.Equal(t, "Extracted lecture text.", got.SourceText)
	assert.Equal(t, domain.SessionStatusUploaded, got.Status)
}

func TestCreateDuplicate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	session := newTestSession(t)

	require.NoError(t, s.Create(ctx, session))
	err := s.Create(ctx, session)

	require.Error(t, err)
	var storeErr *store.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	session := newTestSession(t)
	require.NoError(t, s.Create(ctx, session))

	session.SetCredential("key-123")
	require.NoError(t, s.Update(ctx, session))

	got, err := s.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "key-123", got.Credential)
}

func TestUpdateNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	session := newTestSession(t)

	err := s.Update(context.Background(), session)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestUpdateSummary(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	session := newTestSession(t)
	require.NoError(t, s.Create(ctx, session))

	require.NoError(t, s.UpdateSummary(ctx, session.ID, "A concise summary."))

	got, err := s.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.", got.Summary)
	assert.Equal(t, domain.SessionStatusSummarized, got.Status)

	// Overwrite semantics: a second write replaces the slot.
	require.NoError(t, s.UpdateSummary(ctx, session.ID, "A better summary."))
	got, err = s.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "A better summary.", got.Summary)
}

func TestUpdateSummaryNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	err := s.UpdateSummary(context.Background(), uuid.New(), "summary")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}
