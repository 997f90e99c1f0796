package message

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	msgs := rg.Group("/messages")
	{
		msgs.GET("", h.List)
		msgs.POST("", h.Send)
		msgs.PATCH("", h.MarkRead)
		msgs.PATCH("/:id/read", h.MarkRead)
		msgs.PUT("", h.Conversations)
		msgs.GET("/conversations", h.Conversations)
	}
}

// RegisterRoutes mounts the websocket outside the session middleware; it
// authenticates from the query token or cookie itself.
func (h *WSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages/ws", h.HandleWebSocket)
}
