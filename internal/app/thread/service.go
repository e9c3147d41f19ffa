package thread

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"circle-backend/internal/apperr"
	"circle-backend/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	// GetFeed serves the aggregated listing through the cache gate. The
	// cached payload is viewer-independent; the isLiked overlay is applied
	// per request on both the hit and the miss path.
	GetFeed(ctx context.Context, viewerID uint64) ([]FeedItem, error)
	// GetThread is always computed fresh: the detail enumerates likes and is
	// viewer-dependent by construction.
	GetThread(ctx context.Context, id, viewerID uint64) (*ThreadDetail, error)
	GetAuthorThreads(ctx context.Context, authorID uint64) ([]AuthorThreadItem, error)
	CreateThread(ctx context.Context, authorID uint64, req CreateThreadRequest) (*ThreadRecord, error)
	DeleteThread(ctx context.Context, id uint64) (*ThreadRecord, error)
	// InvalidateFeed is for the like/reply services: their writes change
	// counts, so they must drop the feed entry before acknowledging.
	InvalidateFeed(ctx context.Context)
}

type service struct {
	repo       Repository
	cache      *FeedCache
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
	maxContent int
}

func NewService(
	repo Repository,
	cache *FeedCache,
	eventBus *utils.EventBus,
	logger *zap.Logger,
	maxContent int,
) Service {
	return &service{
		repo:       repo,
		cache:      cache,
		eventBus:   eventBus,
		logger:     logger.Sugar(),
		maxContent: maxContent,
	}
}

func (s *service) GetFeed(ctx context.Context, viewerID uint64) ([]FeedItem, error) {
	// Cache gate: a hit short-circuits the store entirely. Miss and backend
	// failure both fall through to a fresh aggregation.
	if payload, result := s.cache.Get(ctx); result == CacheHit {
		return overlayFeed(payload, viewerID), nil
	}

	raws, err := s.repo.GetAllThreads(ctx)
	if err != nil {
		return nil, err
	}

	payload := buildFeedPayload(raws)
	s.cache.Set(ctx, payload)

	return overlayFeed(payload, viewerID), nil
}

func (s *service) GetThread(ctx context.Context, id, viewerID uint64) (*ThreadDetail, error) {
	raw, err := s.repo.GetThreadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildDetail(raw, viewerID)
}

func (s *service) GetAuthorThreads(ctx context.Context, authorID uint64) ([]AuthorThreadItem, error) {
	raws, err := s.repo.GetThreadsByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return buildAuthorThreads(raws)
}

func (s *service) CreateThread(ctx context.Context, authorID uint64, req CreateThreadRequest) (*ThreadRecord, error) {
	content := strings.TrimSpace(req.Content)
	contentLength := utf8.RuneCountInString(content)
	if contentLength < 1 || contentLength > s.maxContent {
		return nil, fmt.Errorf("thread content must be between 1 and %d characters, got %d: %w",
			s.maxContent, contentLength, apperr.ErrValidation)
	}

	t := &Thread{
		Content:          content,
		Image:            req.Image,
		AuthorID:         authorID,
		ModerationLabels: req.ModerationLabels,
	}
	if err := s.repo.CreateThread(ctx, t); err != nil {
		return nil, err
	}

	// Invalidate before acknowledging: a read racing this write must not see
	// the stale listing after the response lands.
	s.cache.Invalidate(ctx)

	s.eventBus.Publish("thread_created", map[string]interface{}{
		"thread_id": t.ID,
		"author_id": t.AuthorID,
	})

	return newThreadRecord(t), nil
}

func (s *service) DeleteThread(ctx context.Context, id uint64) (*ThreadRecord, error) {
	raw, err := s.repo.DeleteThread(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)

	s.eventBus.Publish("thread_deleted", map[string]interface{}{
		"thread_id": raw.ID,
		"author_id": raw.AuthorID,
	})

	return newThreadRecord(raw), nil
}

func (s *service) InvalidateFeed(ctx context.Context) {
	s.cache.Invalidate(ctx)
}
