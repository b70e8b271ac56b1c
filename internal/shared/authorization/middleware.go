package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/constants"
)

// RequireRole returns a middleware enforcing the privilege threshold implied
// by the required roles. It runs after the auth middleware, which stores the
// caller's role in the context; a missing role means the request never
// authenticated and gets 401, an insufficient one gets 403.
func RequireRole(required ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr := c.GetString(constants.ContextKeyUserRole)
		if roleStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"type": "unauthorized", "message": "authentication required"},
			})
			c.Abort()
			return
		}

		role, ok := ParseRole(roleStr)
		if !ok || !Authorize(role, required...) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "insufficient privileges"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is shorthand for the admin-or-above threshold.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RequireSuperAdmin guards destructive operations.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(RoleSuperAdmin)
}
