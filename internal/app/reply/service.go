package reply

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"circle-backend/internal/apperr"
	"circle-backend/internal/app/thread"
	"circle-backend/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateReply(ctx context.Context, authorID uint64, req CreateReplyRequest) (*ReplyRecord, error)
	DeleteReply(ctx context.Context, id uint64) (*ReplyRecord, error)
}

type service struct {
	repo       Repository
	threadSvc  thread.Service
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
	maxContent int
}

func NewService(repo Repository, threadSvc thread.Service, eventBus *utils.EventBus, logger *zap.Logger, maxContent int) Service {
	return &service{
		repo:       repo,
		threadSvc:  threadSvc,
		eventBus:   eventBus,
		logger:     logger.Sugar(),
		maxContent: maxContent,
	}
}

func (s *service) CreateReply(ctx context.Context, authorID uint64, req CreateReplyRequest) (*ReplyRecord, error) {
	content := strings.TrimSpace(req.Content)
	contentLength := utf8.RuneCountInString(content)
	if contentLength < 1 || contentLength > s.maxContent {
		return nil, fmt.Errorf("reply content must be between 1 and %d characters, got %d: %w",
			s.maxContent, contentLength, apperr.ErrValidation)
	}

	rec := &thread.Reply{
		ThreadID: req.ThreadID,
		AuthorID: authorID,
		Content:  content,
		Image:    req.Image,
	}
	if err := s.repo.CreateReply(ctx, rec); err != nil {
		return nil, err
	}

	// Reply counts feed into totalReplies, so the cached listing is stale now.
	s.threadSvc.InvalidateFeed(ctx)

	s.eventBus.Publish("reply_created", map[string]interface{}{
		"reply_id":  rec.ID,
		"thread_id": rec.ThreadID,
		"author_id": rec.AuthorID,
	})

	return newReplyRecord(rec), nil
}

func (s *service) DeleteReply(ctx context.Context, id uint64) (*ReplyRecord, error) {
	rec, err := s.repo.DeleteReply(ctx, id)
	if err != nil {
		return nil, err
	}

	s.threadSvc.InvalidateFeed(ctx)

	s.eventBus.Publish("reply_deleted", map[string]interface{}{
		"reply_id":  rec.ID,
		"thread_id": rec.ThreadID,
	})

	return newReplyRecord(rec), nil
}

func newReplyRecord(rec *thread.Reply) *ReplyRecord {
	return &ReplyRecord{
		ID:        rec.ID,
		ThreadID:  rec.ThreadID,
		AuthorID:  rec.AuthorID,
		Content:   rec.Content,
		Image:     rec.Image,
		CreatedAt: rec.CreatedAt,
	}
}
