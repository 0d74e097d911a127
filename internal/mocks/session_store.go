package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/store"
)

// MockSessionStore is a mock implementation of store.SessionStore.
// By default it behaves like a map-backed in-memory store; individual
// behaviors can be overridden through the function fields.
type MockSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]domain.Session

	CreateFn        func(ctx context.Context, session *domain.Session) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	UpdateFn        func(ctx context.Context, session *domain.Session) error
	UpdateSummaryFn func(ctx context.Context, id uuid.UUID, summary string) error

	CreateCalls        int
	GetByIDCalls       int
	UpdateCalls        int
	UpdateSummaryCalls int
}

var _ store.SessionStore = (*MockSessionStore)(nil)

// NewMockSessionStore creates a MockSessionStore with an empty backing map.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[uuid.UUID]domain.Session),
	}
}

// Create stores the session, or delegates to CreateFn when set.
func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = *session
	return nil
}

// GetByID returns a copy of the stored session, or delegates to GetByIDFn
// when set. Missing sessions yield store.ErrSessionNotFound.
func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

// Update replaces the stored session, or delegates to UpdateFn when set.
func (m *MockSessionStore) Update(ctx context.Context, session *domain.Session) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, session)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.ID]; !ok {
		return store.ErrSessionNotFound
	}
	m.sessions[session.ID] = *session
	return nil
}

// UpdateSummary writes the summary for the stored session, or delegates to
// UpdateSummaryFn when set.
func (m *MockSessionStore) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	m.mu.Lock()
	m.UpdateSummaryCalls++
	m.mu.Unlock()

	if m.UpdateSummaryFn != nil {
		return m.UpdateSummaryFn(ctx, id, summary)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return store.ErrSessionNotFound
	}
	session.SetSummary(summary)
	m.sessions[id] = session
	return nil
}
