package http

import (
	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Sign-in routes are rate limited but unauthenticated.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/google", mw.RateLimit(), h.GoogleSignIn)
		authGroup.POST("/guest", mw.RateLimit(), h.GuestSession)
	}
}
