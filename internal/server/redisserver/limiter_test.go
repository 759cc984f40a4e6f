package redisserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterRegistry_Disabled(t *testing.T) {
	r := newLimiterRegistry(0, 10)
	assert.Nil(t, r)

	// A nil registry hands out no limiters and tolerates release.
	assert.Nil(t, r.acquire("10.0.0.1"))
	r.release("10.0.0.1")
	assert.Equal(t, 0, r.size())
}

func TestLimiterRegistry_SharedPerIP(t *testing.T) {
	r := newLimiterRegistry(10, 0)
	require.NotNil(t, r)

	a := r.acquire("10.0.0.1")
	b := r.acquire("10.0.0.1")
	c := r.acquire("10.0.0.2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 10, a.Burst(), "burst defaults to the per-second rate")
	assert.Equal(t, 2, r.size())

	r.release("10.0.0.1")
	assert.Equal(t, 2, r.size(), "still referenced by one connection")

	r.release("10.0.0.1")
	r.release("10.0.0.2")
	assert.Equal(t, 0, r.size())

	// Releasing an unknown IP is harmless.
	r.release("10.0.0.3")
}

func TestLimiterRegistry_Burst(t *testing.T) {
	r := newLimiterRegistry(1, 3)
	l := r.acquire("127.0.0.1")

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "token %d", i)
	}
	assert.False(t, l.Allow())
}
