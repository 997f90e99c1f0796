package dashboard

import (
	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
)

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard", middleware.StaffOnly())
	{
		dash.GET("/manager", h.Manager)
		dash.GET("/financials", h.Financials)
	}
}
