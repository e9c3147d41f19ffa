package app

import (
	"circle-backend/internal/app/health"
	"circle-backend/internal/app/like"
	"circle-backend/internal/app/reply"
	"circle-backend/internal/app/thread"
	"circle-backend/internal/app/user"
	"circle-backend/internal/config"
	"circle-backend/internal/db"
	"circle-backend/internal/db/seeder"
	"circle-backend/internal/providers/redis"
	"circle-backend/internal/ratelimit"
	"circle-backend/internal/router"
	"circle-backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()
	limiter := ratelimit.NewLimiter(redisProvider, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)

	userRepo := user.NewRepository(dbConn)
	threadRepo := thread.NewRepository(dbConn)
	likeRepo := like.NewRepository(dbConn)
	replyRepo := reply.NewRepository(dbConn)

	feedCache := thread.NewFeedCache(redisProvider, logger)

	userService := user.NewService(userRepo, redisProvider, logger)
	threadService := thread.NewService(threadRepo, feedCache, eventBus, logger, cfg.MaxThreadLength)
	likeService := like.NewService(likeRepo, threadService, eventBus, logger)
	replyService := reply.NewService(replyRepo, threadService, eventBus, logger, cfg.MaxReplyLength)

	go logDomainEvents(eventBus, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	userHandler := user.NewHandler(userService)
	threadHandler := thread.NewHandler(threadService)
	likeHandler := like.NewHandler(likeService)
	replyHandler := reply.NewHandler(replyService)

	r := router.NewRouter(logger, cfg.FrontendURL, limiter)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterThreadRoutes(threadHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterLikeRoutes(likeHandler)
	r.RegisterReplyRoutes(replyHandler)
	r.RegisterMetricsRoutes()
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}

// logDomainEvents drains the event bus into the audit log.
func logDomainEvents(eventBus *utils.EventBus, logger *zap.Logger) {
	for event := range eventBus.SubscribeCh() {
		logger.Info("Domain event",
			zap.String("event", event.Name),
			zap.Time("at", event.At),
			zap.Any("data", event.Data),
		)
	}
}
