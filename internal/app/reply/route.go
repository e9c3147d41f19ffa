package reply

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.POST("/replies", handler.CreateReply)
	rg.DELETE("/replies/:id", handler.DeleteReply)
}
