package message

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/jwt"
)

func TestHub_PushesToConnectedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.New("test-secret", time.Hour)
	hub := NewHub()

	r := gin.New()
	NewWSHandler(hub, jwtService, "rv_session").RegisterRoutes(r.Group("/api"))
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/messages/ws"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := jwtService.GenerateToken("user-1", "owner")
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Online("user-1") }, time.Second, 10*time.Millisecond)

	assert.False(t, hub.SendToUser("user-2", &Event{Type: EventNewMessage}))
	assert.True(t, hub.SendToUser("user-1", NewMessageEvent(&domain.Communication{ID: "m1", Message: "hi"})))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, EventNewMessage, ev.Type)
	assert.Equal(t, "m1", ev.Message.ID)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pong"`)
}
