package remittance

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	remittances := rg.Group("/remittances")
	{
		remittances.GET("", h.List)
		remittances.GET("/:id", h.Get)
		remittances.POST("/calculate", middleware.StaffOnly(), h.Calculate)
		remittances.POST("/send", middleware.StaffOnly(), h.Send)
		remittances.PATCH("/:id", middleware.StaffOnly(), h.Update)
	}
}
