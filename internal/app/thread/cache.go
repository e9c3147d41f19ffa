package thread

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// feedCacheKey is the single well-known key for the aggregated feed listing.
const feedCacheKey = "feed:threads"

// CacheResult distinguishes hit, miss and backend failure. The service
// collapses BackendError into a miss; the distinction stays internal for
// logging.
type CacheResult int

const (
	CacheHit CacheResult = iota
	CacheMiss
	CacheBackendError
)

// KV is the slice of the redis provider the feed cache needs. Satisfied by
// providers/redis.RedisProvider; tests substitute a fake.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// FeedCache is the cache-aside store for the viewer-independent feed payload.
// Nothing outside this type touches the feed key. Entries carry no TTL:
// invalidation on writes is the only way an entry dies.
type FeedCache struct {
	kv     KV
	logger *zap.SugaredLogger
}

func NewFeedCache(kv KV, logger *zap.Logger) *FeedCache {
	return &FeedCache{
		kv:     kv,
		logger: logger.Sugar(),
	}
}

// Get never fails outward: backend trouble degrades to a miss and the feed is
// recomputed from the store.
func (c *FeedCache) Get(ctx context.Context) ([]CachedThread, CacheResult) {
	data, err := c.kv.Get(ctx, feedCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, CacheMiss
		}
		c.logger.Warnw("Feed cache read failed, falling back to store", "error", err)
		return nil, CacheBackendError
	}

	var payload []CachedThread
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		c.logger.Warnw("Feed cache entry corrupt, dropping it", "error", err)
		c.kv.Del(ctx, feedCacheKey)
		return nil, CacheBackendError
	}

	return payload, CacheHit
}

// Set is best-effort: the store stays the source of truth, so a failed
// write-back only costs the next read a recompute.
func (c *FeedCache) Set(ctx context.Context, payload []CachedThread) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warnw("Failed to encode feed cache payload", "error", err)
		return
	}
	if err := c.kv.SetEX(ctx, feedCacheKey, data, 0).Err(); err != nil {
		c.logger.Warnw("Failed to populate feed cache", "error", err)
	}
}

// Invalidate drops the feed key. Best-effort; mutations call it synchronously
// before acknowledging so a following read cannot observe stale counts.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if err := c.kv.Del(ctx, feedCacheKey).Err(); err != nil {
		c.logger.Warnw("Failed to invalidate feed cache", "error", err)
	}
}
