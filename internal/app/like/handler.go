package like

import (
	"net/http"

	"circle-backend/internal/middleware"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ToggleLike(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Like or unlike a thread
// @Tags Likes
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/likes [post]
func (h *handler) ToggleLike(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid request body", Data: nil})
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), req.ThreadID, middleware.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	message := "Thread liked!"
	if !result.Liked {
		message = "Thread unliked!"
	}
	utils.OK(c, http.StatusOK, message, result)
}
