package message

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
// @Summary Messages sent or received by a user, oldest first
// @Router /messages [get]
func (h *Handler) List(c *gin.Context) {
	f := Filter{UserID: middleware.UserID(c), AssetID: c.Query("asset_id")}
	if id := c.Query("user_id"); id != "" && middleware.IsStaff(c) {
		f.UserID = id
	}

	msgs, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

// Send godoc
// @Summary Send a message from the session user
// @Router /messages [post]
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	m, err := h.service.Send(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// MarkRead accepts the id from the path or as message_id in the body.
func (h *Handler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		var req MarkReadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
		id = req.MessageID
	}

	m, err := h.service.MarkRead(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Conversations godoc
// @Summary Conversations of the session user grouped by partner
// @Router /messages/conversations [get]
func (h *Handler) Conversations(c *gin.Context) {
	convs, err := h.service.Conversations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, convs)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMessageNotFound), errors.Is(err, ErrRecipientNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrMissingID):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}
