package inspection

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/response"
	"rvconsign/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{
		BookingID: c.Query("booking_id"),
		AssetID:   c.Query("asset_id"),
		OwnerID:   middleware.ScopedOwnerID(c),
		RenterID:  middleware.ScopedRenterID(c),
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create godoc
// @Summary Record a check-in or check-out inspection
// @Router /inspections [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	res, err := h.service.Create(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListDamage(c *gin.Context) {
	f := DamageFilter{
		AssetID: c.Query("asset_id"),
		Status:  c.Query("status"),
		OwnerID: middleware.ScopedOwnerID(c),
	}

	rows, err := h.service.ListDamage(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) UpdateDamage(c *gin.Context) {
	var req DamageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	d, err := h.service.UpdateDamage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrDamageReportNotFound),
		errors.Is(err, ErrInspectionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidStatus), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
