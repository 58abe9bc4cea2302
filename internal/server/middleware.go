package server

import (
	"net/http"
	"strings"
	"time"

	model "rewear/internal/models"
	"rewear/internal/token"
	"rewear/services/marketplace/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the bearer token and exposes the acting user's
// identity to downstream handlers.
func AuthRequired(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if !strings.HasPrefix(raw, "Bearer ") {
			utils.JSONResponse(c, http.StatusUnauthorized, nil, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			utils.JSONResponse(c, http.StatusUnauthorized, nil, "invalid or expired token")
			utils.Warn("AuthRequired: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(helpers.ContextUserID, claims.UserID)
		c.Set(helpers.ContextRole, claims.Role)
		c.Next()
	}
}

// AdminRequired gates a route group to admin accounts. Must run after
// AuthRequired.
func AdminRequired(c *gin.Context) {
	if c.GetString(helpers.ContextRole) != model.RoleAdmin {
		utils.JSONResponse(c, http.StatusForbidden, nil, "admin role required")
		c.Abort()
		return
	}
	c.Next()
}
