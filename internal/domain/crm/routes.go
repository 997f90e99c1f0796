package crm

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the manual sync endpoints; callers gate them to staff.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.POST("/hubspot", h.SyncOne)
		sync.GET("/hubspot", h.BulkSync)
	}
}

func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/hubspot", h.Webhook)
}

func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	crm := rg.Group("/crm")
	{
		crm.POST("/bulk-sync", h.BulkSync)
		crm.POST("/retry-outbox", h.RetryOutbox)
	}
}
