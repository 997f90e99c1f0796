package booking

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("", h.Create)
		bookings.PATCH("", h.Update)
		bookings.PATCH("/:id", h.Update)
		bookings.DELETE("", h.Delete)
		bookings.DELETE("/:id", h.Delete)
	}
}
