package mocks

import (
	"context"
	"sync"

	"github.com/tealfox/quizforge/internal/generation"
)

// MockInvoker is a mock implementation of generation.Invoker. It records
// every request it receives so tests can assert on prompts, credentials,
// and schemas. InvokeFn controls the response; when unset, Invoke returns
// an empty string and no error.
type MockInvoker struct {
	mu       sync.Mutex
	requests []generation.Request

	InvokeFn func(ctx context.Context, req generation.Request) (string, error)
}

var _ generation.Invoker = (*MockInvoker)(nil)

// NewMockInvoker creates a MockInvoker with no canned behavior.
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{}
}

// Invoke records the request and delegates to InvokeFn when set.
func (m *MockInvoker) Invoke(ctx context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, req)
	}
	return "", nil
}

// Requests returns a copy of every request passed to Invoke, in order.
func (m *MockInvoker) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]generation.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount reports how many times Invoke was called.
func (m *MockInvoker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
