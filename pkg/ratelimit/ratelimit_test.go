package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := New(nil)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiterWindow(t *testing.T) {
	ctx := context.Background()
	window := 60 * time.Second

	t.Run("Fourth request within window is denied at max 3", func(t *testing.T) {
		l, _ := newTestLimiter(time.Now())

		for i := 0; i < 3; i++ {
			d := l.Allow(ctx, "inquiry-1.2.3.4", 3, window)
			assert.True(t, d.Allowed, "request %d should pass", i+1)
		}
		d := l.Allow(ctx, "inquiry-1.2.3.4", 3, window)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	})

	t.Run("Request after window elapsed is allowed and resets count", func(t *testing.T) {
		l, clock := newTestLimiter(time.Now())

		for i := 0; i < 4; i++ {
			l.Allow(ctx, "k", 3, window)
		}
		*clock = clock.Add(window + time.Second)

		d := l.Allow(ctx, "k", 3, window)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2, d.Remaining) // count reset to 1

		d = l.Allow(ctx, "k", 3, window)
		assert.True(t, d.Allowed)
	})

	t.Run("Keys are counted independently", func(t *testing.T) {
		l, _ := newTestLimiter(time.Now())

		for i := 0; i < 3; i++ {
			l.Allow(ctx, "accept-a", 3, window)
		}
		assert.False(t, l.Allow(ctx, "accept-a", 3, window).Allowed)
		assert.True(t, l.Allow(ctx, "accept-b", 3, window).Allowed)
	})

	t.Run("Expired entries are evicted once table grows past threshold", func(t *testing.T) {
		l, clock := newTestLimiter(time.Now())

		for i := 0; i <= evictionThreshold; i++ {
			l.Allow(ctx, fmt.Sprintf("k%d", i), 3, window)
		}
		*clock = clock.Add(window + time.Second)

		l.Allow(ctx, "fresh", 3, window)

		l.mu.Lock()
		size := len(l.entries)
		l.mu.Unlock()
		assert.LessOrEqual(t, size, 2) // expired entries swept, fresh one kept
	})

	t.Run("ResetAt reflects window end", func(t *testing.T) {
		start := time.Now()
		l, _ := newTestLimiter(start)

		d := l.Allow(ctx, "k", 3, window)
		assert.Equal(t, start.Add(window), d.ResetAt)
	})
}

func TestLimiterConcurrent(t *testing.T) {
	// Concurrent increments must not race; exact counts may be lossy under
	// contention but the table itself has to stay consistent.
	l := New(nil)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				l.Allow(ctx, "shared", 50, time.Minute)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	d := l.Allow(ctx, "shared", 50, time.Minute)
	assert.False(t, d.Allowed)
}
