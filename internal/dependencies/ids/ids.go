package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/tictactoe/internal/model"
)

// Generator produces identifiers that can be mocked for testing
type Generator interface {
	NewSessionID() model.SessionID
}

// UUIDGenerator implements Generator with random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewSessionID returns a fresh random UUID
func (g *UUIDGenerator) NewSessionID() model.SessionID {
	return model.SessionID(uuid.New().String())
}
