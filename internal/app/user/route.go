package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.GET("/users/:id", handler.GetUser)
	rg.GET("/me", handler.GetMe)
}
