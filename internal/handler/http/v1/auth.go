package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/gaia_guard/internal/auth"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Пользователь, которому принадлежит ключ, кладется в контекст запроса.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		userID, ok := cfg.APIKeys[apiKey]
		if !ok {
			log.Warnf("Invalid API key provided: %s", maskKey(apiKey))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(userIDKey, userID)
		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), userID))
		c.Next()
	}
}

// maskKey оставляет в логе только первые символы ключа
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
