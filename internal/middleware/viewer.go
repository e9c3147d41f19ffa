package middleware

import (
	"net/http"
	"strconv"

	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const viewerKey = "viewer_id"

// ViewerMiddleware reads the authenticated user id set by the upstream auth
// gateway. Session validation itself happens there, not here.
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Viewer-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{
				Error:   true,
				Message: "missing viewer identity",
				Data:    nil,
			})
			return
		}

		viewerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || viewerID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{
				Error:   true,
				Message: "invalid viewer identity",
				Data:    nil,
			})
			return
		}

		c.Set(viewerKey, viewerID)
		c.Next()
	}
}

// ViewerID returns the viewer bound to the request, 0 when absent.
func ViewerID(c *gin.Context) uint64 {
	if v, ok := c.Get(viewerKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
