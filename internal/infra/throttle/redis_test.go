package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, max int) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, max, time.Minute), mr
}

func TestLimiterBlocksAfterMaxFailures(t *testing.T) {
	l, _ := newLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "a@gym.io")
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, l.Fail(ctx, "a@gym.io"))
	}

	ok, err := l.Allow(ctx, "a@gym.io")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "b@gym.io")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterWindowExpires(t *testing.T) {
	l, mr := newLimiter(t, 1)
	ctx := context.Background()

	require.NoError(t, l.Fail(ctx, "a@gym.io"))
	ok, err := l.Allow(ctx, "a@gym.io")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = l.Allow(ctx, "a@gym.io")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterReset(t *testing.T) {
	l, _ := newLimiter(t, 1)
	ctx := context.Background()

	require.NoError(t, l.Fail(ctx, "a@gym.io"))
	require.NoError(t, l.Reset(ctx, "a@gym.io"))

	ok, err := l.Allow(ctx, "a@gym.io")
	require.NoError(t, err)
	assert.True(t, ok)
}
