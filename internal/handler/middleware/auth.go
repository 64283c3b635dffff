package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/cookie"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxUsernameKey = "staff_username"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the session cookie set by login, or a Bearer token for
// non-browser callers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentification requise",
			})
			c.Abort()
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session invalide ou expirée",
			})
			c.Abort()
			return
		}

		c.Set(ctxUsernameKey, username)
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}
