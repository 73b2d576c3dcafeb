package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
)

// APIKeyAuthMiddleware verifies the "Authorization: Bearer <token>" header
// against the configured shared secret. The presentation adapter is the only
// intended caller of this service.
func APIKeyAuthMiddleware() gin.HandlerFunc {
	secretToken := configs.GetGlobalConfig().CredentialConfig.Token
	if secretToken == "" {
		log.Fatal("FATAL: credential.token is not configured")
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.String(http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.String(http.StatusUnauthorized, "Authorization header format must be 'Bearer {token}'")
			c.Abort()
			return
		}

		providedToken := parts[1]

		// Constant-time compare so the token cannot be probed byte by byte.
		if subtle.ConstantTimeCompare([]byte(providedToken), []byte(secretToken)) != 1 {
			c.String(http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
