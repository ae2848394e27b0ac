package mock

import (
	"context"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	PurgeCalled bool
	PurgeKeys   []string
	PurgeErr    error
}

func (m *MockDispatcher) EnqueuePurgeObject(ctx context.Context, objectKey string) error {
	m.PurgeCalled = true
	m.PurgeKeys = append(m.PurgeKeys, objectKey)
	return m.PurgeErr
}
