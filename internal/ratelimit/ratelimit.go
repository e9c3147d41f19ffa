package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Scripter is the slice of the redis client the limiter needs. Satisfied by
// providers/redis.RedisProvider; tests substitute a fake.
type Scripter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Decision is the admission verdict for one request.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// slidingWindow trims entries older than the window, counts what is left and
// admits if the count is under the limit. Runs server-side so the
// check-and-record step is atomic per key.
//
// KEYS[1] window key, ARGV: now_ms, window_ms, limit, member.
// Returns {allowed, remaining, reset_at_ms}.
const slidingWindow = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)
if count < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  return {1, limit - count - 1, now + window}
end
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
local reset = now + window
if oldest[2] then
  reset = tonumber(oldest[2]) + window
end
return {0, 0, reset}
`

// Limiter is a sliding-window rate limiter keyed by client identity.
type Limiter struct {
	redis  Scripter
	limit  int
	window time.Duration
	logger *zap.SugaredLogger
}

func NewLimiter(redisC Scripter, limit int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		redis:  redisC,
		limit:  limit,
		window: window,
		logger: logger.Sugar(),
	}
}

func (l *Limiter) Limit() int {
	return l.limit
}

// Admit decides whether a request from the given identity may proceed. A
// redis failure fails open: admission control degrading must not take the
// API down with it.
func (l *Limiter) Admit(ctx context.Context, identity string) Decision {
	now := time.Now()
	nowMs := now.UnixMilli()
	key := fmt.Sprintf("ratelimit:%s", identity)
	member := fmt.Sprintf("%d-%d", now.UnixNano(), nowMs)

	raw, err := l.redis.Eval(ctx, slidingWindow, []string{key},
		nowMs, l.window.Milliseconds(), l.limit, member).Result()
	if err != nil {
		l.logger.Warnw("Rate limit check failed, admitting request", "identity", identity, "error", err)
		return l.failOpen(now)
	}

	vals, ok := raw.([]interface{})
	if !ok || len(vals) != 3 {
		l.logger.Warnw("Unexpected rate limit script reply, admitting request", "reply", raw)
		return l.failOpen(now)
	}

	allowed, okA := vals[0].(int64)
	remaining, okB := vals[1].(int64)
	resetMs, okC := vals[2].(int64)
	if !okA || !okB || !okC {
		l.logger.Warnw("Unexpected rate limit script reply, admitting request", "reply", raw)
		return l.failOpen(now)
	}

	return Decision{
		Allowed:   allowed == 1,
		Remaining: int(remaining),
		ResetAt:   time.UnixMilli(resetMs),
	}
}

func (l *Limiter) failOpen(now time.Time) Decision {
	return Decision{
		Allowed:   true,
		Remaining: l.limit,
		ResetAt:   now.Add(l.window),
	}
}
