package middleware

import (
	"strings"

	"workbridge_backend/internal/auth"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/models"
	"workbridge_backend/pkg/apperrors"
	"workbridge_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthOption tunes AuthMiddleware.
type AuthOption func(*authOptions)

type authOptions struct {
	queryToken bool
}

// AllowQueryToken also accepts the token as ?token=. Only the websocket
// endpoint uses it, since browsers cannot set headers on an upgrade request.
func AllowQueryToken() AuthOption {
	return func(o *authOptions) { o.queryToken = true }
}

// AuthMiddleware checks the bearer token and stores its claims on the context.
func AuthMiddleware(opts ...AuthOption) gin.HandlerFunc {
	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" && o.queryToken {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(string(contextkeys.UserIDKey), claims.UserID)
		c.Set(string(contextkeys.RoleKey), claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// RoleMiddleware only lets requests with requiredRole through.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != requiredRole {
			apperrors.HandleError(c, apperrors.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

// AdminOnly is AuthMiddleware followed by an admin role check.
func AdminOnly(opts ...AuthOption) []gin.HandlerFunc {
	return []gin.HandlerFunc{AuthMiddleware(opts...), RoleMiddleware(models.UserRoleAdmin)}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(string(contextkeys.UserIDKey))
}

func GetRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString(string(contextkeys.RoleKey)))
}
