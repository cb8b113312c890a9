package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, deadline.ErrEmptyTaskID):
		response.Error(c, err, nil)
	case errors.Is(err, deadline.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
