package notifier

import (
	"sync"

	"padel-games/internal/padel"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendGameRecordedCalls []*padel.GameDetail
	SendGameRecordedFunc  func(game *padel.GameDetail) (string, error)
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendGameRecorded(game *padel.GameDetail) (string, error) {
	m.mu.Lock()
	m.SendGameRecordedCalls = append(m.SendGameRecordedCalls, game)
	m.mu.Unlock()
	if m.SendGameRecordedFunc != nil {
		return m.SendGameRecordedFunc(game)
	}
	return "mock-ts", nil
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameRecordedCalls = nil
}
