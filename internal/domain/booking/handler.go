package booking

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

// List godoc
// @Summary List bookings, newest first
// @Router /bookings [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		Status:   c.Query("status"),
		AssetID:  c.Query("asset_id"),
		RenterID: c.Query("renter_id"),
		OwnerID:  c.Query("owner_id"),
	}
	if id := middleware.ScopedOwnerID(c); id != "" {
		f.OwnerID = id
	}
	if id := middleware.ScopedRenterID(c); id != "" {
		f.RenterID = id
	}

	bookings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

// Get godoc
// @Summary Get a booking
// @Router /bookings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !visible(c, b.OwnerID, b.RenterID) {
		response.NotFound(c, ErrBookingNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Create godoc
// @Summary Create a booking priced from the asset
// @Router /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if id := middleware.ScopedRenterID(c); id != "" {
		req.RenterID = id
	}
	if req.Status != "" && !middleware.IsStaff(c) {
		h.writeError(c, ErrStaffOnly)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	b, effects, err := h.service.Create(c.Request.Context(), req, middleware.ScopedOwnerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusCreated, b, effects)
}

// Update godoc
// @Summary Partially update a booking; the id comes from the path or the body
// @Router /bookings/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}
	id := c.Param("id")
	if id == "" {
		id = req.ID
	}
	if !h.allowed(c, id) {
		return
	}

	b, effects, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusOK, b, effects)
}

// Delete godoc
// @Summary Cancel a booking (soft delete)
// @Router /bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		response.BadRequest(c, ErrMissingID.Error())
		return
	}
	if !h.allowed(c, id) {
		return
	}

	b, effects, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusOK, b, effects)
}

// allowed writes a 404 when a scoped session touches someone else's booking.
func (h *Handler) allowed(c *gin.Context, id string) bool {
	if id == "" || (middleware.ScopedOwnerID(c) == "" && middleware.ScopedRenterID(c) == "") {
		return true
	}
	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return false
	}
	if !visible(c, b.OwnerID, b.RenterID) {
		response.NotFound(c, ErrBookingNotFound.Error())
		return false
	}
	return true
}

func visible(c *gin.Context, ownerID, renterID string) bool {
	if id := middleware.ScopedOwnerID(c); id != "" && id != ownerID {
		return false
	}
	if id := middleware.ScopedRenterID(c); id != "" && id != renterID {
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrAssetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrStaffOnly):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrInvalidDates), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidTime), errors.Is(err, ErrMissingID), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
