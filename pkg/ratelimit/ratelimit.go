// Package ratelimit implements fixed-window request counting keyed by an
// opaque string (operation family + caller identifier). Counters live in
// Redis when a client is configured, so limits hold across instances;
// otherwise a process-local table is used, which is acceptable for abuse
// deterrence but not strict quota enforcement.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const incrLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// evictionThreshold caps unbounded growth of the in-memory table. When the
// table is larger than this, expired entries are swept opportunistically on
// the next check.
const evictionThreshold = 1000

type entry struct {
	count   int
	resetAt time.Time
}

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key within a fixed window.
type Limiter struct {
	redis *goredis.Client // nil when not configured

	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// New returns a Limiter. redis may be nil, in which case counting is
// process-local only.
func New(redis *goredis.Client) *Limiter {
	return &Limiter{
		redis:   redis,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow consumes one request slot for key. The first maxRequests calls
// within a window succeed; further calls are denied until the window
// elapses, after which the count resets to 1.
//
// Redis errors fall back to the in-memory table rather than failing the
// request: rate limiting is a deterrence, not a hard guarantee.
func (l *Limiter) Allow(ctx context.Context, key string, maxRequests int, window time.Duration) Decision {
	if l.redis != nil {
		if d, err := l.allowRedis(ctx, key, maxRequests, window); err == nil {
			return d
		}
	}
	return l.allowInMemory(key, maxRequests, window)
}

func (l *Limiter) allowRedis(ctx context.Context, key string, maxRequests int, window time.Duration) (Decision, error) {
	ttlSeconds := int(window.Seconds())

	result, err := l.redis.Eval(ctx, incrLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Decision{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	resetAt := l.now().Add(time.Duration(ttl) * time.Second)

	return decision(int(count), maxRequests, resetAt), nil
}

func (l *Limiter) allowInMemory(key string, maxRequests int, window time.Duration) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) > evictionThreshold {
		for k, e := range l.entries {
			if e.resetAt.Before(now) {
				delete(l.entries, k)
			}
		}
	}

	e, exists := l.entries[key]
	if !exists || e.resetAt.Before(now) {
		e = &entry{count: 0, resetAt: now.Add(window)}
		l.entries[key] = e
	}
	e.count++

	return decision(e.count, maxRequests, e.resetAt)
}

func decision(count, maxRequests int, resetAt time.Time) Decision {
	remaining := maxRequests - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= maxRequests,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
