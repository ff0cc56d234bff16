// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/leonardo-a/daily-diet-api/services"

	"github.com/gin-gonic/gin"
)

// SessionAuth resolves the bearer session token issued at registration and
// stores the owning user in the context under "user". The token is opaque:
// the only check is a lookup against the stored credential.
func SessionAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := auth.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
