package middleware

import (
	"net/http"
	"strconv"

	"circle-backend/internal/ratelimit"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware runs admission control before any cache or store work.
// Quota metadata is exposed on every response, allowed or not.
func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Admit(c.Request.Context(), c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.Response{
				Error:   true,
				Message: "too many requests, try again later",
				Data:    nil,
			})
			return
		}

		c.Next()
	}
}
