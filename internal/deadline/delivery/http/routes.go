package http

import (
	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a session, guest or verified.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deadlines := rg.Group("/deadlines")
	{
		deadlines.GET("/overview", mw.Auth(), h.Overview)
		deadlines.GET("/ranked", mw.Auth(), h.Ranked)
		deadlines.GET("/triage", mw.Auth(), h.Triage)
		deadlines.GET("/nudge", mw.Auth(), h.Nudge)
		deadlines.POST("/tasks/:id/toggle", mw.Auth(), h.Toggle)
	}
}
