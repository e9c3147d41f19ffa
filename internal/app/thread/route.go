package thread

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	threads := rg.Group("/threads")
	{
		threads.GET("", handler.GetFeed)
		threads.GET("/thread/:id", handler.GetThread)
		threads.GET("/user/:id", handler.GetAuthorThreads)
		threads.POST("", handler.CreateThread)
		threads.DELETE("/thread/:id", handler.DeleteThread)
	}
}
