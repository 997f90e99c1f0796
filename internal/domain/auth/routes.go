package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth routes; /me goes behind requireAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/signout", h.SignOut)
		auth.GET("/me", requireAuth, h.Me)
	}
}
