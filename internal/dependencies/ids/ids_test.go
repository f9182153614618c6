package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionIDIsUniqueUUID(t *testing.T) {
	g := New()
	a, b := g.NewSessionID(), g.NewSessionID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(string(a))
	require.NoError(t, err)
}
