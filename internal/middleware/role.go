package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has one of the given roles
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		current, _ := role.(string)
		for _, r := range roles {
			if domain.UserRole(current) == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// StaffOnly admits fleet managers and admins.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleManager, domain.RoleAdmin)
}
