package db

import (
	"circle-backend/internal/app/thread"
	"circle-backend/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&thread.Thread{},
		&thread.Like{},
		&thread.Reply{},
	); err != nil {
		return err
	}

	logger.Info("Database migrations applied")
	return nil
}
