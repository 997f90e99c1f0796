package owner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/middleware"
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
// @Summary All owners with their asset counts, newest first
// @Router /owners [get]
func (h *Handler) List(c *gin.Context) {
	owners, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, owners)
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if !selfOrStaff(c, id) {
		return
	}
	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

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

	o, effects, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusOK, o, effects)
}

// Onboard godoc
// @Summary Public owner application: creates a pending owner and vehicle
// @Router /onboard/owner [post]
func (h *Handler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	res, effects, err := h.service.Onboard(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusCreated, res, effects)
}

// Earnings godoc
// @Summary Revenue, expenses and payouts for an owner
// @Router /owners/{id}/earnings [get]
func (h *Handler) Earnings(c *gin.Context) {
	id := c.Param("id")
	if !selfOrStaff(c, id) {
		return
	}
	e, err := h.service.Earnings(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// selfOrStaff lets staff through and an owner session only to its own record.
func selfOrStaff(c *gin.Context, ownerID string) bool {
	if middleware.IsStaff(c) {
		return true
	}
	if scope := middleware.ScopedOwnerID(c); scope != "" && scope == ownerID {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	return false
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOwnerNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidSplit), errors.Is(err, ErrMissingContact):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
