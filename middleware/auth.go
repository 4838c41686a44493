// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	staffRepo "stayflow/database/repository/staff"
	"stayflow/services/staff"
	"stayflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func JWTAuthMiddleware(staffRepo staffRepo.StaffRepository, tokens staff.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Logged-out tokens are rejected until their natural expiry.
		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				zap.L().Warn("Token revocation check failed", zap.Error(err))
			} else if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
		}

		staffID, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// The account must still exist; revoked staff lose access immediately.
		member, err := staffRepo.GetByID(staffID)
		if err != nil || member == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Staff account not found"})
			return
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", role)
		c.Next()
	}
}
