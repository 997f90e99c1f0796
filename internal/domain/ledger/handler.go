package ledger

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/transactions", h.List)
}

// List godoc
// @Summary List ledger transactions, newest first
// @Router /transactions [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		OwnerID:   c.Query("owner_id"),
		AssetID:   c.Query("asset_id"),
		BookingID: c.Query("booking_id"),
		Type:      c.Query("type"),
		Status:    c.Query("status"),
	}
	if ownerID := middleware.ScopedOwnerID(c); ownerID != "" {
		f.OwnerID = ownerID
	}

	txns, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, txns)
}
