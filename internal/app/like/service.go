package like

import (
	"context"
	"fmt"

	"circle-backend/internal/app/thread"
	"circle-backend/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	// ToggleLike likes the thread when no like exists and removes the like
	// otherwise. Either way the feed cache is invalidated before the call
	// returns: both directions change totalLikes.
	ToggleLike(ctx context.Context, threadID, authorID uint64) (*ToggleResult, error)
}

type service struct {
	repo      Repository
	threadSvc thread.Service
	eventBus  *utils.EventBus
	logger    *zap.SugaredLogger
}

func NewService(repo Repository, threadSvc thread.Service, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		threadSvc: threadSvc,
		eventBus:  eventBus,
		logger:    logger.Sugar(),
	}
}

func (s *service) ToggleLike(ctx context.Context, threadID, authorID uint64) (*ToggleResult, error) {
	existing, err := s.repo.GetLike(ctx, threadID, authorID)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{ThreadID: threadID, AuthorID: authorID}

	if existing == nil {
		if err := s.repo.CreateLike(ctx, &thread.Like{ThreadID: threadID, AuthorID: authorID}); err != nil {
			return nil, fmt.Errorf("failed to like thread: %w", err)
		}
		result.Liked = true
	} else {
		if err := s.repo.DeleteLike(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to unlike thread: %w", err)
		}
		result.Liked = false
	}

	s.threadSvc.InvalidateFeed(ctx)

	event := "thread_liked"
	if !result.Liked {
		event = "thread_unliked"
	}
	s.eventBus.Publish(event, map[string]interface{}{
		"thread_id": threadID,
		"author_id": authorID,
	})

	return result, nil
}
