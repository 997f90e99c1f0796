package maintenance

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	m := rg.Group("/maintenance")
	{
		m.GET("", h.List)
		m.GET("/:id", h.Get)
		m.POST("", h.Create)
		m.PATCH("/:id", middleware.StaffOnly(), h.Update)
	}
}
