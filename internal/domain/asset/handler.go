package asset

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
// @Summary List assets, newest first
// @Router /assets [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{Status: c.Query("status"), OwnerID: c.Query("owner_id")}
	if id := middleware.ScopedOwnerID(c); id != "" {
		f.OwnerID = id
	}

	assets, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, assets)
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if id := middleware.ScopedOwnerID(c); id != "" && id != a.OwnerID {
		response.NotFound(c, ErrAssetNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Create godoc
// @Summary Register an RV under an owner
// @Router /assets [post]
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

	a, effects, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusCreated, a, effects)
}

// Update godoc
// @Summary Partially update an asset; the id comes from the path or the body
// @Router /assets/{id} [patch]
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

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Delete godoc
// @Summary Hard-delete an asset
// @Router /assets/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAssetNotFound), errors.Is(err, ErrOwnerNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrMissingID), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
