package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/domain"
	jwtsvc "rvconsign/internal/pkg/jwt"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth accepts `Authorization: Bearer <token>` or the session cookie and
// stores user_id / role on the context.
func JWTAuth(jwt *jwtsvc.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, code, msg := extractToken(c, cookieName)
		if tokenStr == "" {
			abortUnauthorized(c, code, msg)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (token, code, msg string) {
	if h := c.GetHeader("Authorization"); h != "" {
		if !strings.HasPrefix(h, "Bearer ") {
			return "", "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'"
		}
		token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if token == "" {
			return "", "INVALID_AUTH_FORMAT", "Empty token"
		}
		return token, "", ""
	}

	if cookieName != "" {
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			return v, "", ""
		}
	}
	return "", "UNAUTHORIZED", "Authentication required"
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// UserID returns the authenticated profile id, or "".
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

// Role returns the authenticated role, or "".
func Role(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString(CtxRole))
}

// IsStaff reports manager or admin sessions.
func IsStaff(c *gin.Context) bool {
	r := Role(c)
	return r == domain.RoleManager || r == domain.RoleAdmin
}
