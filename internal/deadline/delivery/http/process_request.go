package http

import (
	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/deadline"
)

// processToggleReq pulls the task ID from the URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	req := toggleReq{TaskID: c.Param("id")}
	if req.TaskID == "" {
		return req, deadline.ErrEmptyTaskID
	}
	return req, nil
}
