package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/domain"
)

const (
	CtxOwnerID  = "scope_owner_id"
	CtxRenterID = "scope_renter_id"
)

// ErrNoAccount is returned by a ScopeResolver when the profile has no owner
// or renter row.
var ErrNoAccount = errors.New("no account linked to profile")

type ScopeResolver interface {
	OwnerIDForUser(ctx context.Context, userID string) (string, error)
	RenterIDForUser(ctx context.Context, userID string) (string, error)
}

// Scope pins owner and renter sessions to their own records. Staff sessions
// pass through unscoped.
func Scope(resolver ScopeResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			key string
			id  string
			err error
		)
		switch Role(c) {
		case domain.RoleOwner:
			key = CtxOwnerID
			id, err = resolver.OwnerIDForUser(c.Request.Context(), UserID(c))
		case domain.RoleRenter:
			key = CtxRenterID
			id, err = resolver.RenterIDForUser(c.Request.Context(), UserID(c))
		default:
			c.Next()
			return
		}

		if errors.Is(err, ErrNoAccount) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "NO_ACCOUNT", "message": "No " + string(Role(c)) + " record for this profile"},
			})
			return
		}
		if err != nil {
			log.Printf("scope_resolve_failed user_id=%s err=%v", UserID(c), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": err.Error()},
			})
			return
		}

		c.Set(key, id)
		c.Next()
	}
}

// ScopedOwnerID is the owner an owner session is pinned to, or "".
func ScopedOwnerID(c *gin.Context) string {
	return c.GetString(CtxOwnerID)
}

// ScopedRenterID is the renter a renter session is pinned to, or "".
func ScopedRenterID(c *gin.Context) string {
	return c.GetString(CtxRenterID)
}
