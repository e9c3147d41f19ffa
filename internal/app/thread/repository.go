package thread

import (
	"context"
	"errors"
	"fmt"

	"circle-backend/internal/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository is the store gateway: thread fetch and mutation with
// join-expansion. Store errors are mapped onto the taxonomy and propagated
// opaque, never interpreted here.
type Repository interface {
	// GetAllThreads returns every thread expanded with author, likes and replies.
	GetAllThreads(ctx context.Context) ([]Thread, error)
	// GetThreadByID returns (nil, nil) when the id has no record; the view
	// layer turns absence into the domain error.
	GetThreadByID(ctx context.Context, id uint64) (*Thread, error)
	GetThreadsByAuthorID(ctx context.Context, authorID uint64) ([]Thread, error)
	CreateThread(ctx context.Context, t *Thread) error
	// DeleteThread hard-deletes and returns the removed record; likes and
	// replies go with it through the FK cascade.
	DeleteThread(ctx context.Context, id uint64) (*Thread, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllThreads(ctx context.Context) ([]Thread, error) {
	var threads []Thread
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Replies").
		Find(&threads).Error
	if err != nil {
		return nil, mapStoreError("failed to get threads", err)
	}
	return threads, nil
}

func (r *repository) GetThreadByID(ctx context.Context, id uint64) (*Thread, error) {
	var t Thread
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Replies").
		First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapStoreError("failed to get thread", err)
	}
	return &t, nil
}

func (r *repository) GetThreadsByAuthorID(ctx context.Context, authorID uint64) ([]Thread, error) {
	var threads []Thread
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Replies").
		Where("author_id = ?", authorID).
		Find(&threads).Error
	if err != nil {
		return nil, mapStoreError("failed to get user threads", err)
	}
	return threads, nil
}

func (r *repository) CreateThread(ctx context.Context, t *Thread) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return mapStoreError("failed to create thread", err)
	}
	return nil
}

func (r *repository) DeleteThread(ctx context.Context, id uint64) (*Thread, error) {
	var t Thread
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return err
		}
		return tx.Delete(&Thread{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
		}
		return nil, mapStoreError("failed to delete thread", err)
	}
	return &t, nil
}

// mapStoreError classifies postgres failures: constraint violations become
// conflicts, everything else is the store being unreachable.
func mapStoreError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503", "23502", "23514":
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, apperr.ErrConflict)
		}
	}
	return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrUnavailable)
}
