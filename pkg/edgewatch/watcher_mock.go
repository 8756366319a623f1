package edgewatch

import "github.com/stretchr/testify/mock"

// fails if MockWatcher does not implement Watcher
var _ Watcher = &MockWatcher{}

// MockWatcher implements a mock for the Watcher interface
type MockWatcher struct {
	mock.Mock
}

func (m *MockWatcher) Close() error {
	args := m.Called()
	return args.Error(0)
}
