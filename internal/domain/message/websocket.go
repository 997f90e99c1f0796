package message

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rvconsign/internal/pkg/jwt"
	"rvconsign/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the session token is checked before the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	cookieName string
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, cookieName string) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService, cookieName: cookieName}
}

// HandleWebSocket godoc
// @Summary Server push channel for new messages
// @Param token query string false "Session token when no cookie is sent"
// @Router /messages/ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" && h.cookieName != "" {
		token, _ = c.Cookie(h.cookieName)
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "token is required")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed user_id=%s err=%v", claims.UserID, err)
		return
	}

	log.Printf("ws_connected user_id=%s", claims.UserID)
	h.hub.ServeWS(conn, claims.UserID)
	log.Printf("ws_disconnected user_id=%s", claims.UserID)
}
