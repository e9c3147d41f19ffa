package router

import (
	"strings"

	"circle-backend/internal/app/health"
	"circle-backend/internal/app/like"
	"circle-backend/internal/app/reply"
	"circle-backend/internal/app/thread"
	"circle-backend/internal/app/user"
	"circle-backend/internal/middleware"
	"circle-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine

	// api: admission-controlled routes; authed additionally carries the
	// viewer identity from the upstream gateway.
	api    *gin.RouterGroup
	authed *gin.RouterGroup
}

func NewRouter(logger *zap.Logger, frontendURL string, limiter *ratelimit.Limiter) *Router {
	registerValidators()

	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(frontendURL))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter))

	authed := api.Group("")
	authed.Use(middleware.ViewerMiddleware())

	return &Router{
		Engine: engine,
		api:    api,
		authed: authed,
	}
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.api, handler)
}

func (r *Router) RegisterThreadRoutes(handler thread.Handler) {
	thread.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterLikeRoutes(handler like.Handler) {
	like.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterReplyRoutes(handler reply.Handler) {
	reply.RegisterRoutes(r.authed, handler)
}

func (r *Router) RegisterMetricsRoutes() {
	r.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
