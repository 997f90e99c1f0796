package expense

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
		Status:  c.Query("status"),
		AssetID: c.Query("asset_id"),
		OwnerID: c.Query("owner_id"),
	}
	if id := middleware.ScopedOwnerID(c); id != "" {
		f.OwnerID = id
	}

	expenses, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, expenses)
}

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

	e, err := h.service.Create(c.Request.Context(), req, middleware.ScopedOwnerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

// Update godoc
// @Summary Partially update an expense; approval books it on the ledger
// @Router /expenses/{id} [patch]
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

	if scope := middleware.ScopedOwnerID(c); scope != "" {
		if req.Status != nil {
			h.writeError(c, ErrStaffOnly)
			return
		}
		if !h.owns(c, id, scope) {
			return
		}
	}

	e, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		response.BadRequest(c, ErrMissingID.Error())
		return
	}
	if middleware.ScopedOwnerID(c) != "" {
		h.writeError(c, ErrStaffOnly)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) owns(c *gin.Context, id, ownerID string) bool {
	if id == "" {
		return true
	}
	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return false
	}
	if e.OwnerID != ownerID {
		response.NotFound(c, ErrExpenseNotFound.Error())
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExpenseNotFound), errors.Is(err, ErrAssetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrStaffOnly):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrMissingID), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
