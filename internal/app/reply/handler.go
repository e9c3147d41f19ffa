package reply

import (
	"net/http"
	"strconv"

	"circle-backend/internal/middleware"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateReply(c *gin.Context)
	DeleteReply(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Post a reply
// @Tags Replies
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/replies [post]
func (h *handler) CreateReply(c *gin.Context) {
	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid request body", Data: nil})
		return
	}

	record, err := h.service.CreateReply(c.Request.Context(), middleware.ViewerID(c), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Reply posted!", record)
}

// @Summary Delete a reply
// @Tags Replies
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/replies/{id} [delete]
func (h *handler) DeleteReply(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid reply ID", Data: nil})
		return
	}

	record, err := h.service.DeleteReply(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Reply deleted!", record)
}
