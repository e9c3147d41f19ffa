package reply

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
	CreateReply(ctx context.Context, r *thread.Reply) error
	// DeleteReply hard-deletes and returns the removed record.
	DeleteReply(ctx context.Context, id uint64) (*thread.Reply, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateReply(ctx context.Context, rec *thread.Reply) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
		}
		return fmt.Errorf("failed to create reply: %w", apperr.ErrUnavailable)
	}
	return nil
}

func (r *repository) DeleteReply(ctx context.Context, id uint64) (*thread.Reply, error) {
	var rec thread.Reply
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		return tx.Delete(&thread.Reply{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("requested reply does not exist: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete reply: %w", apperr.ErrUnavailable)
	}
	return &rec, nil
}
