package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeScripter returns a canned script reply and records what it was called
// with.
type fakeScripter struct {
	reply    interface{}
	err      error
	lastKeys []string
	lastArgs []interface{}
	calls    int
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	f.calls++
	f.lastKeys = keys
	f.lastArgs = args
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	return redis.NewCmdResult(f.reply, nil)
}

func TestLimiterAdmit(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed request", func(t *testing.T) {
		resetMs := time.Now().Add(time.Minute).UnixMilli()
		fake := &fakeScripter{reply: []interface{}{int64(1), int64(41), resetMs}}
		limiter := NewLimiter(fake, 42, time.Minute, zap.NewNop())

		decision := limiter.Admit(ctx, "10.0.0.1")

		assert.True(t, decision.Allowed)
		assert.Equal(t, 41, decision.Remaining)
		assert.Equal(t, time.UnixMilli(resetMs), decision.ResetAt)
	})

	t.Run("denied request", func(t *testing.T) {
		resetMs := time.Now().Add(30 * time.Second).UnixMilli()
		fake := &fakeScripter{reply: []interface{}{int64(0), int64(0), resetMs}}
		limiter := NewLimiter(fake, 42, time.Minute, zap.NewNop())

		decision := limiter.Admit(ctx, "10.0.0.1")

		assert.False(t, decision.Allowed)
		assert.Equal(t, 0, decision.Remaining)
		assert.Equal(t, time.UnixMilli(resetMs), decision.ResetAt)
	})

	t.Run("window key carries the identity", func(t *testing.T) {
		fake := &fakeScripter{reply: []interface{}{int64(1), int64(0), time.Now().UnixMilli()}}
		limiter := NewLimiter(fake, 1, time.Minute, zap.NewNop())

		limiter.Admit(ctx, "10.0.0.1")

		require.Len(t, fake.lastKeys, 1)
		assert.Equal(t, "ratelimit:10.0.0.1", fake.lastKeys[0])
		require.Len(t, fake.lastArgs, 4)
		assert.Equal(t, time.Minute.Milliseconds(), fake.lastArgs[1])
		assert.Equal(t, 1, fake.lastArgs[2])
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		fake := &fakeScripter{err: errors.New("connection refused")}
		limiter := NewLimiter(fake, 42, time.Minute, zap.NewNop())

		decision := limiter.Admit(ctx, "10.0.0.1")

		assert.True(t, decision.Allowed)
		assert.Equal(t, 42, decision.Remaining)
		assert.False(t, decision.ResetAt.IsZero())
	})

	t.Run("malformed reply fails open", func(t *testing.T) {
		for _, reply := range []interface{}{
			"nope",
			[]interface{}{int64(1)},
			[]interface{}{"1", "0", "0"},
		} {
			fake := &fakeScripter{reply: reply}
			limiter := NewLimiter(fake, 42, time.Minute, zap.NewNop())

			decision := limiter.Admit(ctx, "10.0.0.1")

			assert.True(t, decision.Allowed)
		}
	})
}
