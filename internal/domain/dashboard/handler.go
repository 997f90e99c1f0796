package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Manager godoc
// @Summary Fleet overview: assets, bookings, expenses, maintenance
// @Router /dashboard/manager [get]
func (h *Handler) Manager(c *gin.Context) {
	stats, err := h.service.Manager(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Financials godoc
// @Summary Revenue, platform fees, expenses and payouts
// @Router /dashboard/financials [get]
func (h *Handler) Financials(c *gin.Context) {
	f, err := h.service.Financials(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}
