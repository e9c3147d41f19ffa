package like

import (
	"context"
	"errors"
	"fmt"

	"circle-backend/internal/apperr"
	"circle-backend/internal/app/thread"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	// GetLike returns (nil, nil) when the viewer has not liked the thread.
	GetLike(ctx context.Context, threadID, authorID uint64) (*thread.Like, error)
	CreateLike(ctx context.Context, l *thread.Like) error
	DeleteLike(ctx context.Context, id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetLike(ctx context.Context, threadID, authorID uint64) (*thread.Like, error) {
	var l thread.Like
	err := r.db.WithContext(ctx).
		Where("thread_id = ? AND author_id = ?", threadID, authorID).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get like: %w", apperr.ErrUnavailable)
	}
	return &l, nil
}

func (r *repository) CreateLike(ctx context.Context, l *thread.Like) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
			case "23505":
				return fmt.Errorf("thread already liked: %w", apperr.ErrConflict)
			}
		}
		return fmt.Errorf("failed to create like: %w", apperr.ErrUnavailable)
	}
	return nil
}

func (r *repository) DeleteLike(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&thread.Like{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete like: %w", apperr.ErrUnavailable)
	}
	return nil
}
