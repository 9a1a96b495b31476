package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, window time.Duration, clock *time.Time) *MemoryLimiter {
	rl := NewMemoryLimiter(limit, window)
	rl.now = func() time.Time { return *clock }
	return rl
}

func TestMemoryLimiterWindow(t *testing.T) {
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rl := newTestLimiter(3, time.Minute, &clock)
	defer rl.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, _ := rl.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	ok, _ = rl.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "other keys are independent")

	clock = clock.Add(time.Minute + time.Second)
	ok, _ = rl.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "new window")
}

func TestMemoryLimiterEvict(t *testing.T) {
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, time.Minute, &clock)
	defer rl.Close()

	_, _ = rl.Allow(context.Background(), "a")
	clock = clock.Add(3 * time.Minute)
	_, _ = rl.Allow(context.Background(), "b")
	rl.evict()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

func TestMemoryLimiterCloseIsIdempotent(t *testing.T) {
	rl := NewMemoryLimiter(1, time.Minute)
	rl.Close()
	rl.Close()
}
