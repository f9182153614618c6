package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n := r.Intn(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}

func TestIntnNonPositive(t *testing.T) {
	assert.Equal(t, 0, New().Intn(0))
	assert.Equal(t, 0, New().Intn(-4))
}
