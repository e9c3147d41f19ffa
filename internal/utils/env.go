package utils

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func LoadEnv(logger *zap.Logger) {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		logger.Warn("ENV file not found, relying on process environment", zap.String("file", file))
		return
	}
	logger.Info("ENV file loaded", zap.String("file", file))
}
