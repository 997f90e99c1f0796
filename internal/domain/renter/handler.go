package renter

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
	renters, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, renters)
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if !selfOrStaff(c, id) {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Update godoc
// @Summary Update a renter's licence, address and emergency contact
// @Router /renters/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !selfOrStaff(c, id) {
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func selfOrStaff(c *gin.Context, renterID string) bool {
	if middleware.IsStaff(c) {
		return true
	}
	if scope := middleware.ScopedRenterID(c); scope != "" && scope == renterID {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	return false
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRenterNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
