package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ricotama/LAPORin/internal/model"
)

// SnapshotSource supplies the current collection for the greeting snapshot a
// client receives right after registering.
type SnapshotSource interface {
	Snapshot() []model.ReportDTO
}

type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client

	source SnapshotSource
	mu     sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// SetSnapshotSource must be called before Run; the hub and the collection
// service reference each other, so wiring happens in two steps.
func (h *Hub) SetSnapshotSource(source SnapshotSource) {
	h.source = source
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendInitialSnapshot(client)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) sendInitialSnapshot(client *Client) {
	if h.source == nil {
		return
	}

	event := NewSnapshotEvent(h.source.Snapshot(), time.Now().UnixMilli())
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal initial snapshot", "error", err)
		return
	}

	select {
	case client.Send <- data:
	default:
	}
}

// BroadcastSnapshot pushes the full collection to every connected client.
// Slow clients are dropped rather than allowed to stall the rest.
func (h *Hub) BroadcastSnapshot(reports []model.ReportDTO) {
	event := NewSnapshotEvent(reports, time.Now().UnixMilli())
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal snapshot event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
