package middleware

import (
	"net/http"

	"stayflow/models"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group to the given roles. Managers pass every
// guard. Must run after JWTAuthMiddleware, which sets staffRole.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("staffRole")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated role"})
			return
		}
		if role == models.RoleManager {
			c.Next()
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}
