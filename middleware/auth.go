// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"contour/models"
	"contour/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and checks the session is still
// live in the auth cache, so revoked tokens fail even before expiry.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "failure", "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "failure", "message": "Invalid token"})
			return
		}

		// Reject tokens that were revoked via logout.
		key := utils.AuthCachePrefix + utils.HashToken(tokenString)
		if err := utils.GetAuthCacheClient().Get(c.Request.Context(), key).Err(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "failure", "message": "Session expired or revoked"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireAdmin gates a route group to admin accounts. Must run after
// AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "failure", "message": "Admin access required"})
			return
		}
		c.Next()
	}
}
