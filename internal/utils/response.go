package utils

import (
	"errors"
	"net/http"

	"circle-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Error:   false,
		Message: message,
		Data:    data,
	})
}

// Fail maps the error taxonomy onto HTTP status codes and answers with a
// failed envelope carrying the error detail and a null payload.
func Fail(c *gin.Context, err error) {
	c.JSON(StatusCode(err), Response{
		Error:   true,
		Message: err.Error(),
		Data:    nil,
	})
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
