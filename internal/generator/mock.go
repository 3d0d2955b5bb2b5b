package generator

import (
	"context"
	"fmt"
	"sync"
)

// MockBackend implements Backend for testing. Responses are consumed one per
// call; the last response repeats once the queue is exhausted. Per-call
// errors registered with FailOn take precedence over responses.
type MockBackend struct {
	mu        sync.Mutex
	responses []string
	errs      map[int]error
	calls     []Request

	// GenerateError fails every call when set.
	GenerateError error
}

// NewMockBackend creates a MockBackend with the given scripted responses.
func NewMockBackend(responses ...string) *MockBackend {
	return &MockBackend{
		responses: responses,
		errs:      make(map[int]error),
	}
}

// FailOn makes the n-th call (1-based) return err instead of a response.
func (m *MockBackend) FailOn(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[n] = err
}

// Generate implements Backend.
func (m *MockBackend) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	n := len(m.calls)

	if m.GenerateError != nil {
		return "", m.GenerateError
	}
	if err := m.errs[n]; err != nil {
		return "", err
	}
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock backend has no scripted response for call %d", n)
	}

	i := n - 1
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	return m.responses[i], nil
}

// CallCount returns the number of Generate calls so far.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of every request received.
func (m *MockBackend) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastCall returns the most recent request, if any.
func (m *MockBackend) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Request{}, false
	}
	return m.calls[len(m.calls)-1], true
}
