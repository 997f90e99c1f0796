package expense

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.List)
		expenses.POST("", h.Create)
		expenses.PATCH("", h.Update)
		expenses.PATCH("/:id", h.Update)
		expenses.DELETE("", h.Delete)
		expenses.DELETE("/:id", h.Delete)
	}
}
