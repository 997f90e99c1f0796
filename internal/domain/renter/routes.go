package renter

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	renters := rg.Group("/renters")
	{
		renters.GET("", middleware.StaffOnly(), h.List)
		renters.GET("/:id", h.Get)
		renters.PATCH("/:id", h.Update)
	}
}
