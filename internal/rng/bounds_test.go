package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	b := HalfOpen(1, 10)
	assert.Equal(t, "[1, 10)", b.String())
	assert.True(t, b.Contains(1))
	assert.False(t, b.Contains(10))
	assert.NoError(t, b.Validate())

	c := Closed(-2.5, 2.5)
	assert.Equal(t, "[-2.5, 2.5]", c.String())
	assert.True(t, c.Contains(2.5))
	assert.False(t, c.Contains(-3))

	assert.True(t, isFloat[float32]())
	assert.False(t, isFloat[int]())
	assert.True(t, isSigned[int8]())
	assert.False(t, isSigned[uint64]())
}
