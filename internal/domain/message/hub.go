package message

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rvconsign/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	EventNewMessage = "new_message"
	EventRead       = "read"
	EventPong       = "pong"
)

// Event is pushed to websocket clients.
type Event struct {
	Type    string                `json:"type"`
	Message *domain.Communication `json:"message,omitempty"`
}

func NewMessageEvent(m *domain.Communication) *Event {
	return &Event{Type: EventNewMessage, Message: m}
}

func NewReadEvent(m *domain.Communication) *Event {
	return &Event{Type: EventRead, Message: m}
}

type connection struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks one live connection per user. A newer connection replaces the older one.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*connection
}

func NewHub() *Hub {
	return &Hub{connections: make(map[string]*connection)}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.connections[c.userID]; ok {
		close(old.send)
	}
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

// Online reports whether the user has a live connection.
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.connections[userID]
	return ok
}

// SendToUser queues the event; a full buffer drops it.
func (h *Hub) SendToUser(userID string, event *Event) bool {
	data, err := json.Marshal(event)
	if err != nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.connections[userID]
	if !ok {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		log.Printf("ws_send_dropped user_id=%s type=%s", userID, event.Type)
		return false
	}
}

// ServeWS registers the connection and blocks until the client goes away.
func (h *Hub) ServeWS(conn *websocket.Conn, userID string) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// readPump keeps the read deadline alive and answers application pings.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws_read_error user_id=%s err=%v", c.userID, err)
			}
			return
		}

		var in struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(raw, &in) == nil && in.Type == "ping" {
			h.SendToUser(c.userID, &Event{Type: EventPong})
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
