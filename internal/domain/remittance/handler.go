package remittance

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

// Calculate godoc
// @Summary Compute an owner payout for a period without saving it
// @Router /remittances/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	var req PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	calc, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, calc)
}

// Send godoc
// @Summary Save a pending remittance for a period and email the statement
// @Router /remittances/send [post]
func (h *Handler) Send(c *gin.Context) {
	var req PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rem, effects, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusCreated, rem, effects)
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{OwnerID: c.Query("owner_id"), Status: c.Query("status")}
	if id := middleware.ScopedOwnerID(c); id != "" {
		f.OwnerID = id
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Get(c *gin.Context) {
	rem, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if id := middleware.ScopedOwnerID(c); id != "" && id != rem.OwnerID {
		response.NotFound(c, ErrRemittanceNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, rem)
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

	rem, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rem)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOwnerNotFound), errors.Is(err, ErrRemittanceNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidStatus), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
