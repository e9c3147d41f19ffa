package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service interface {
	GetProfile(ctx context.Context, id uint64) (*Profile, error)
}

// KV is the slice of the redis provider the profile cache needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetWithDefaultTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
}

type service struct {
	repo   Repository
	kv     KV
	logger *zap.SugaredLogger
}

func NewService(repo Repository, kv KV, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		kv:     kv,
		logger: logger.Sugar(),
	}
}

// GetProfile is a read-through per-user cache. Unlike the feed key these
// entries expire on the provider's default TTL, there is no profile mutation
// path here to invalidate them.
func (s *service) GetProfile(ctx context.Context, id uint64) (*Profile, error) {
	cacheKey := fmt.Sprintf("user:profile:%d", id)

	if cached, err := s.kv.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var profile Profile
		if json.Unmarshal([]byte(cached), &profile) == nil {
			return &profile, nil
		}
	}

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := NewProfile(u)
	if data, err := json.Marshal(profile); err == nil {
		if err := s.kv.SetWithDefaultTTL(ctx, cacheKey, data, 0).Err(); err != nil {
			s.logger.Warnw("Failed to cache user profile", "user_id", id, "error", err)
		}
	}

	return &profile, nil
}
