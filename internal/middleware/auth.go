package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/model"
	"study-deadline-engine/pkg/response"
)

const scopeKey = "x-scope"

// Auth verifies the bearer session token and stores the resulting
// scope in the request context. Guest tokens pass too; the scope
// carries the distinction.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.sessions.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: payload.UserID,
			Guest:  payload.Guest,
		})
		c.Next()
	}
}

// GetScope returns the scope the Auth middleware stored, or the zero
// scope on unauthenticated routes.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
