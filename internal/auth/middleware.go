package auth

import (
	"strings"

	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	adminIDKey  = "admin_id"
	usernameKey = "username"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the admin identity on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(adminIDKey, claims.AdminID)
		c.Set(usernameKey, claims.Username)
		c.Request = c.Request.WithContext(logger.ContextWithUsername(c.Request.Context(), claims.Username))

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	respondError(c, err)
	c.Abort()
}

// GetAdminID is a helper function to extract the admin id from context
func GetAdminID(c *gin.Context) (uint, bool) {
	adminID, exists := c.Get(adminIDKey)
	if !exists {
		return 0, false
	}

	id, ok := adminID.(uint)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
