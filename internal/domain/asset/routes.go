package asset

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	assets := rg.Group("/assets")
	{
		assets.GET("", h.List)
		assets.GET("/:id", h.Get)

		staff := assets.Group("", middleware.StaffOnly())
		staff.POST("", h.Create)
		staff.PATCH("", h.Update)
		staff.PATCH("/:id", h.Update)
		staff.DELETE("", h.Delete)
		staff.DELETE("/:id", h.Delete)
	}
}
