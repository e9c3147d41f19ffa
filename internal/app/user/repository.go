package user

import (
	"context"
	"errors"
	"fmt"

	"circle-backend/internal/apperr"

	"gorm.io/gorm"
)

type Repository interface {
	GetUserByID(ctx context.Context, id uint64) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserByID(ctx context.Context, id uint64) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("requested user does not exist: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", apperr.ErrUnavailable)
	}
	return &u, nil
}
