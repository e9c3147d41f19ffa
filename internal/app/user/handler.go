package user

import (
	"net/http"
	"strconv"

	"circle-backend/internal/middleware"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetUser(c *gin.Context)
	GetMe(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/users/{id} [get]
func (h *handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Response{Error: true, Message: "invalid user ID", Data: nil})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "User retrieved!", profile)
}

// @Summary Get the logged-in user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/me [get]
func (h *handler) GetMe(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, http.StatusOK, "Logged user retrieved!", profile)
}
