package crm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rvconsign/internal/hubspot"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/pkg/response"
)

type Handler struct {
	service       *Service
	webhookSecret string
}

func NewHandler(service *Service, webhookSecret string) *Handler {
	return &Handler{service: service, webhookSecret: webhookSecret}
}

// SyncOne godoc
// @Summary Push one owner, booking or maintenance request to HubSpot
// @Router /sync/hubspot [post]
func (h *Handler) SyncOne(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.SyncEntity(c.Request.Context(), req.Type, req.ID)
	if err != nil {
		h.writeSyncError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// BulkSync godoc
// @Summary Push all owners, active bookings and open maintenance to HubSpot
// @Router /sync/hubspot [get]
func (h *Handler) BulkSync(c *gin.Context) {
	res, err := h.service.BulkSync(c.Request.Context())
	if err != nil {
		h.writeSyncError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// RetryOutbox godoc
// @Summary Replay failed CRM pushes
// @Router /internal/crm/retry-outbox [post]
func (h *Handler) RetryOutbox(c *gin.Context) {
	res, err := h.service.RetryOutbox(c.Request.Context())
	if err != nil {
		h.writeSyncError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Webhook godoc
// @Summary Receive HubSpot change events
// @Router /webhooks/hubspot [post]
func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "cannot read request body")
		return
	}

	if h.webhookSecret != "" {
		if !hubspot.VerifySignatureV1(h.webhookSecret, body, c.GetHeader(hubspot.SignatureHeader)) {
			response.Error(c, http.StatusUnauthorized, "INVALID_SIGNATURE", ErrInvalidSignature.Error())
			return
		}
	}

	var events []hubspot.Event
	if err := json.Unmarshal(body, &events); err != nil {
		response.BadRequest(c, "expected a JSON array of events")
		return
	}

	res := h.service.HandleWebhook(c.Request.Context(), events)
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) writeSyncError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidEntityType), errors.Is(err, ErrMissingID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ErrEntityNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, outcome.ErrSkipped):
		response.Error(c, http.StatusServiceUnavailable, "CRM_DISABLED", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusBadGateway, "CRM_ERROR", strings.TrimSpace(err.Error()))
	}
}
