package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRole is the platform role that unlocks the governance surface.
const AdminRole = "ADMIN"

// RequireAdmin returns middleware that rejects requests from non-admin
// actors. Services re-check the role against the database on every
// privileged operation; this gate only keeps anonymous and regular users
// off the admin route group.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "admin_required", "message": "no role in context",
			})
			return
		}
		if r, ok := role.(string); !ok || r != AdminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "admin_required", "message": "administrator privileges required",
			})
			return
		}
		c.Next()
	}
}
