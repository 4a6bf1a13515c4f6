package throttle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemoryLimiter(maxAttempts int, window time.Duration) (*MemoryLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewMemoryLimiter(maxAttempts, window)
	l.now = clock.Now
	return l, clock
}

func TestMemoryLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestMemoryLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
		require.NoError(t, l.Fail(ctx, "203.0.113.7"))
	}

	allowed, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = l.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, allowed, "other clients are unaffected")
}

func TestMemoryLimiter_Refills(t *testing.T) {
	ctx := context.Background()
	l, clock := newTestMemoryLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Fail(ctx, "client"))
	}

	clock.Advance(4 * time.Minute)
	allowed, _ := l.Allow(ctx, "client")
	assert.False(t, allowed, "one refill interval has not passed")

	clock.Advance(time.Minute + time.Second)
	allowed, _ = l.Allow(ctx, "client")
	assert.True(t, allowed, "a single token refills after window/maxAttempts")
}

func TestMemoryLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestMemoryLimiter(1, time.Minute)

	require.NoError(t, l.Fail(ctx, "client"))
	allowed, _ := l.Allow(ctx, "client")
	assert.False(t, allowed)

	require.NoError(t, l.Reset(ctx, "client"))
	allowed, _ = l.Allow(ctx, "client")
	assert.True(t, allowed)
	assert.Equal(t, 0, l.size())
}

func TestMemoryLimiter_SweepsIdleKeys(t *testing.T) {
	ctx := context.Background()
	l, clock := newTestMemoryLimiter(5, time.Minute)

	require.NoError(t, l.Fail(ctx, "a"))
	require.NoError(t, l.Fail(ctx, "b"))
	assert.Equal(t, 2, l.size())

	clock.Advance(2 * time.Minute)
	require.NoError(t, l.Fail(ctx, "c"))

	assert.Equal(t, 1, l.size())
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestMemoryLimiter(100, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Allow(ctx, "shared")
			_ = l.Fail(ctx, "shared")
		}()
	}
	wg.Wait()

	allowed, err := l.Allow(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, allowed)
}
