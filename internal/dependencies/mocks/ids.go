package mocks

import (
	"fmt"

	"github.com/mcoot/tictactoe/internal/dependencies/ids"
	"github.com/mcoot/tictactoe/internal/model"
)

// MockIDs is a mock implementation of ids.Generator returning sequential IDs
type MockIDs struct {
	count int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewSessionID returns session-1, session-2, ...
func (g *MockIDs) NewSessionID() model.SessionID {
	g.count++
	return model.SessionID(fmt.Sprintf("session-%d", g.count))
}
