package owner

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	owners := rg.Group("/owners")
	{
		owners.GET("", middleware.StaffOnly(), h.List)
		owners.GET("/:id", h.Get)
		owners.GET("/:id/earnings", h.Earnings)
		owners.PATCH("/:id", middleware.StaffOnly(), h.Update)
	}
}

// RegisterPublicRoutes mounts the onboarding form, which needs no session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/onboard/owner", h.Onboard)
}
