package maintenance

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
	f := Filter{Status: c.Query("status"), AssetID: c.Query("asset_id")}
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
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if id := middleware.ScopedOwnerID(c); id != "" && id != m.OwnerID {
		response.NotFound(c, ErrRequestNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create godoc
// @Summary Open a maintenance ticket for an asset
// @Router /maintenance [post]
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

	m, effects, err := h.service.Create(c.Request.Context(), req, middleware.UserID(c), middleware.ScopedOwnerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusCreated, m, effects)
}

// Update godoc
// @Summary Update a maintenance ticket
// @Router /maintenance/{id} [patch]
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

	m, effects, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithEffects(c, http.StatusOK, m, effects)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrAssetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPriority), errors.Is(err, dates.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
