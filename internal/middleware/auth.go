package middleware

import (
	"net/http"
	"strings"

	"fithub_backend/internal/auth"
	"fithub_backend/internal/logger"
	"fithub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Principal - аутентифицированный актор текущего запроса.
type Principal struct {
	UserID string
	Email  string
	Role   models.UserRole
}

const principalKey = "principal"

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем principal в контекст
		c.Set(principalKey, Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   models.UserRole(claims.Role),
		})

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - middleware ограничения по ролям.
// Ответ всегда один и тот же "Access denied", без уточнения причины.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || !roleSet[p.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// GetPrincipal извлекает principal из контекста запроса
func GetPrincipal(c *gin.Context) (Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := val.(Principal)
	return p, ok
}
