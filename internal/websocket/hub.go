package websocket

import (
	"encoding/json"
	"sync"

	"waste-management-backend/pkg/utils"
)

// Hub maintains active WebSocket connections and broadcasts entity events
type Hub struct {
	// Registered clients (client ID -> Client)
	clients map[string]*Client

	// Encoded messages waiting to be fanned out
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client
	stop       chan struct{}

	// Mutex for thread-safe client map access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
	}
}

// Run starts the hub's main loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			count := len(h.clients)
			h.mu.Unlock()
			utils.Logger.Infof("✅ [WEBSOCKET] Client connected: %s (%s), %d connected", client.ID, client.UserEmail, count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				utils.Logger.Infof("🔴 [WEBSOCKET] Client disconnected: %s, %d remaining", client.ID, len(h.clients))
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, id)
					utils.Logger.Warnf("⚠️ Client buffer full, disconnecting: %s", id)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every client
func (h *Hub) Stop() {
	close(h.stop)
}

// BroadcastAll queues data for every connected client. When the queue is
// full the event is dropped rather than blocking the caller.
func (h *Hub) BroadcastAll(data interface{}) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		utils.Logger.WithError(err).Error("❌ Failed to marshal broadcast message")
		return
	}

	select {
	case h.broadcast <- dataBytes:
	default:
		utils.Logger.Warn("⚠️ Broadcast queue full, dropping event")
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetConnectedClientIDs returns a list of all connected client IDs
func (h *Hub) GetConnectedClientIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}
