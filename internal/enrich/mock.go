package enrich

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockSource.
type MockResult struct {
	Page *Page
	Err  error
}

// MockSource is a deterministic Source for testing.
// It returns canned results in FIFO order and records all names.
type MockSource struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []string
}

// NewMockSource creates a MockSource with the given canned results.
func NewMockSource(results ...MockResult) *MockSource {
	return &MockSource{results: results}
}

// Lookup returns the next canned result, or ErrNotFound once the queue is
// empty.
func (m *MockSource) Lookup(_ context.Context, name string) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, name)

	if len(m.results) == 0 {
		return nil, ErrNotFound
	}

	r := m.results[0]
	m.results = m.results[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Page, nil
}

// CallCount returns the number of Lookup calls.
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
