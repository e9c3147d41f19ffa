package seeder

import (
	"circle-backend/internal/app/thread"
	"circle-backend/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedThreads(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	users := []user.User{
		{Username: "ayesha", FullName: "Ayesha Rahman", Email: "ayesha@circle.dev", Password: "$2a$10$seeded", Bio: ptr("hello circle")},
		{Username: "budi", FullName: "Budi Santoso", Email: "budi@circle.dev", Password: "$2a$10$seeded"},
		{Username: "citra", FullName: "Citra Lestari", Email: "citra@circle.dev", Password: "$2a$10$seeded", Bio: ptr("coffee first")},
	}

	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded users", zap.Int("count", len(users)))
	return nil
}

func (s *Seeder) seedThreads() error {
	var count int64
	s.db.Model(&thread.Thread{}).Count(&count)
	if count > 0 {
		s.logger.Info("Threads already exist, skipping seed")
		return nil
	}

	threads := []thread.Thread{
		{Content: "first post on circle", AuthorID: 1},
		{Content: "anyone up for a coding session tonight?", AuthorID: 2},
	}

	if err := s.db.Create(&threads).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded threads", zap.Int("count", len(threads)))
	return nil
}

func ptr(s string) *string {
	return &s
}
