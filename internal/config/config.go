package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	ServerPort string
	RedisURL   string
	Env        string

	// Default TTL for per-entity cache keys (user profiles). The feed key
	// deliberately carries no TTL, it lives until a write invalidates it.
	RedisTTL time.Duration

	FrontendURL string

	// Admission control: sliding window per client identity.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	MaxThreadLength int
	MaxReplyLength  int
}

func LoadConfig() Config {
	return Config{
		DBHost:            getEnv("DB_HOST", "postgres"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPass:            getEnv("DB_PASSWORD", "password"),
		DBName:            getEnv("DB_NAME", "db_circle"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		RedisURL:          getEnv("REDIS_URL", "redis:6379"),
		Env:               getEnv("ENV", "dev"),
		RedisTTL:          getEnvAsDuration("REDIS_TTL", 5*time.Minute),
		FrontendURL:       getEnv("FRONTEND_URL", ""),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 1000),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		MaxThreadLength:   getEnvAsInt("MAX_THREAD_LENGTH", 500),
		MaxReplyLength:    getEnvAsInt("MAX_REPLY_LENGTH", 500),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
