package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/home-central/backend/internal/api/http"
	"github.com/home-central/backend/internal/auth/service"
)

// Keys under which the authenticated identity and the per-request authorized
// store handle are stashed in the gin context.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextDB     = "db"
)

// RequireUser validates the bearer token against the identity provider and
// builds a store handle scoped to that token. A missing or malformed header
// fails with 401 before the provider is ever contacted.
func RequireUser(gw *service.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
			c.Abort()
			return
		}

		user, err := gw.Resolve(c.Request.Context(), token)
		if err != nil {
			httpapi.Error(c, err)
			c.Abort()
			return
		}

		db, err := gw.Authorized(token)
		if err != nil {
			httpapi.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextDB, db)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
