package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/models"
)

// RequireRole creates a middleware that ensures the resolved principal
// holds one of the allowed roles. Visitors get 401 (not authenticated);
// authenticated principals with a different role get 403. This middleware
// should be used after AuthMiddleware.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists || !principal.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		for _, role := range allowed {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient privileges",
		})
		c.Abort()
	}
}
