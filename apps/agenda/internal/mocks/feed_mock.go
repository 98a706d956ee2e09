package mocks

import (
	"context"
	"sync"

	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
)

type MockFeedClient struct {
	mu      sync.Mutex
	records []feed.RawEvent
	err     error
}

func NewMockFeedClient() *MockFeedClient {
	return &MockFeedClient{}
}

// SetRecords makes the next fetches return records and clears any error.
func (m *MockFeedClient) SetRecords(records []feed.RawEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = records
	m.err = nil
}

// SetError makes the next fetches fail with err.
func (m *MockFeedClient) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *MockFeedClient) Fetch(_ context.Context) ([]feed.RawEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	return m.records, nil
}
