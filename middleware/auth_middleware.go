package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/services"
)

// principalKey is the gin context key carrying the resolved principal.
const principalKey = "principal"

// AuthMiddleware resolves the principal for every request. Unauthenticated
// or unverifiable requests pass through as visitors; routes decide what
// roles they require. The only hard rejection here is a soft-deleted
// account presenting otherwise valid credentials.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := auth.Resolve(c.GetHeader("X-Dev-User"), extractBearerToken(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Account deleted",
			})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("userId", principal.UserID)
		c.Set("role", string(principal.Role))
		c.Set("email", principal.Email)
		c.Next()
	}
}

// GetPrincipal returns the principal resolved for this request.
func GetPrincipal(c *gin.Context) (dto.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return dto.Visitor(), false
	}
	principal, ok := value.(dto.Principal)
	if !ok {
		return dto.Visitor(), false
	}
	return principal, true
}

// extractBearerToken pulls the credential from the Authorization header,
// falling back to the access_token cookie.
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie
	}

	return ""
}
