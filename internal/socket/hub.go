// server/internal/socket/hub.go
package socket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Hub tracks live WebSocket connections, one per profile. A second
// connection for the same profile replaces the first.
type Hub struct {
	clients map[string]*websocket.Conn // keyed by profileID
	mu      sync.RWMutex
	log     *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		log:     log,
	}
}

func (h *Hub) Register(profileID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[profileID] = conn
	h.log.WithField("profileID", profileID).Info("websocket client registered")
}

func (h *Hub) Unregister(profileID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[profileID]; ok {
		delete(h.clients, profileID)
		h.log.WithField("profileID", profileID).Info("websocket client unregistered")
	}
}

// Send pushes a message to one profile. An offline recipient is not an
// error; the notification is already persisted and will show up on the
// next poll.
func (h *Hub) Send(profileID string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[profileID]
	if !ok {
		h.log.WithField("profileID", profileID).Debug("websocket client offline, skipping push")
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, message)
}
