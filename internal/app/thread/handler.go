package thread

import (
	"net/http"
	"strconv"

	"circle-backend/internal/middleware"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetFeed(c *gin.Context)
	GetThread(c *gin.Context)
	GetAuthorThreads(c *gin.Context)
	CreateThread(c *gin.Context)
	DeleteThread(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get the thread feed
// @Tags Threads
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/threads [get]
func (h *handler) GetFeed(c *gin.Context) {
	feed, err := h.service.GetFeed(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Threads retrieved!", feed)
}

// @Summary Get a single thread
// @Tags Threads
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/threads/thread/{id} [get]
func (h *handler) GetThread(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid thread ID", Data: nil})
		return
	}

	detail, err := h.service.GetThread(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Thread retrieved!", detail)
}

// @Summary Get all threads of one author
// @Tags Threads
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/threads/user/{id} [get]
func (h *handler) GetAuthorThreads(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid user ID", Data: nil})
		return
	}

	threads, err := h.service.GetAuthorThreads(c.Request.Context(), authorID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "User's threads retrieved!", threads)
}

// @Summary Post a thread
// @Tags Threads
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/threads [post]
func (h *handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid request body", Data: nil})
		return
	}

	record, err := h.service.CreateThread(c.Request.Context(), middleware.ViewerID(c), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Thread posted!", record)
}

// @Summary Delete a thread
// @Tags Threads
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/threads/thread/{id} [delete]
func (h *handler) DeleteThread(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid thread ID", Data: nil})
		return
	}

	record, err := h.service.DeleteThread(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Thread deleted!", record)
}
