package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/security"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key carrying the authenticated user ID
const UserIDKey = "userID"

// Auth middleware verifies the bearer token and stores the user ID in the
// request context. Core operations only ever see an authenticated userID
func Auth(tokens security.TokenService, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Missing or malformed authorization header",
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			logger.Warn("Rejected invalid token", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthenticatedUserID extracts the user ID stored by the Auth middleware
func AuthenticatedUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

// AdminKey middleware guards administrative routes with a shared key header
func AdminKey(key string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("X-Admin-Key") != key {
			logger.Warn("Rejected admin request", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Admin access denied",
			})
			return
		}
		c.Next()
	}
}
