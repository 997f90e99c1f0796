package inspection

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	inspections := rg.Group("/inspections")
	{
		inspections.GET("", h.List)
		inspections.POST("", middleware.StaffOnly(), h.Create)
	}

	damage := rg.Group("/damage-reports")
	{
		damage.GET("", h.ListDamage)
		damage.PATCH("/:id", middleware.StaffOnly(), h.UpdateDamage)
	}
}
