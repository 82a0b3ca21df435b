package clockx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_NoCandidates(t *testing.T) {
	c := New(4)
	_, ok := c.Victim()
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestClock_SecondChanceOrder(t *testing.T) {
	c := New(3)
	c.Unpin(0)
	c.Unpin(1)
	c.Unpin(2)
	require.Equal(t, 3, c.Size())

	// First sweep clears all reference bits, second sweep evicts in hand
	// order starting from slot 0.
	id, ok := c.Victim()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	id, ok = c.Victim()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	id, ok = c.Victim()
	require.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = c.Victim()
	assert.False(t, ok)
}

func TestClock_PinRemovesCandidate(t *testing.T) {
	c := New(2)
	c.Unpin(0)
	c.Unpin(1)
	c.Pin(0)
	require.Equal(t, 1, c.Size())

	id, ok := c.Victim()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = c.Victim()
	assert.False(t, ok)
}

func TestClock_UnpinIdempotent(t *testing.T) {
	c := New(2)
	c.Unpin(1)
	c.Unpin(1)
	assert.Equal(t, 1, c.Size())
}

func TestClock_OutOfRangeIgnored(t *testing.T) {
	c := New(2)
	c.Unpin(-1)
	c.Unpin(2)
	c.Pin(99)
	assert.Zero(t, c.Size())
}
