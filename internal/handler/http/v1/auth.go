package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lumina-safety/safety_signal_system/internal/auth"
	"github.com/lumina-safety/safety_signal_system/internal/models"
)

// Ключи контекста Gin, заполняемые после проверки токена
const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"
)

// JWTAuthMiddleware - middleware для аутентификации по Bearer-токену
func JWTAuthMiddleware(tokens *auth.JWTService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// DashboardRoleMiddleware - middleware, пропускающий только роли ngo/city/admin
func DashboardRoleMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxUserRole)
		if !models.IsDashboardRole(role) {
			log.WithField("role", role).Warn("Dashboard access denied for role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "dashboard access requires ngo, city or admin role"})
			return
		}
		c.Next()
	}
}
