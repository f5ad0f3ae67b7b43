package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"texasholdem-server/pkg/table"
)

// Hub tracks the websocket clients subscribed to each table and fans table
// state out to them. Every client gets a snapshot scoped to its own seat, so
// hole cards are never pushed to the wrong player.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool
}

// NewHub returns an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]bool),
	}
}

// Register subscribes the client to its table
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[c.TableID]
	if !ok {
		clients = make(map[*Client]bool)
		h.clients[c.TableID] = clients
	}

	clients[c] = true
}

// Unregister removes the client's subscription
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[c.TableID]
	if !ok {
		return
	}

	delete(clients, c)
	if len(clients) == 0 {
		delete(h.clients, c.TableID)
	}
}

// Broadcast pushes the table's current state to every subscribed client
func (h *Hub) Broadcast(t *table.Table) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients[t.ID()]))
	for client := range h.clients[t.ID()] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.Send(t.State(client.PlayerID)) {
			logrus.WithField("client", client.String()).Warn("client buffer full, dropping state update")
		}
	}
}
