package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	Wants(entity EntityType) bool
	Send(data []byte) error
	Close() error
}

// Hub fans events out to connected clients.
// It is safe for concurrent use.
type Hub struct {
	clients map[string]ClientInterface
	mu      sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]ClientInterface),
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID()] = client

	log.Debug().
		Str("client_id", client.ID()).
		Int("client_count", len(h.clients)).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientID := client.ID()
	if _, exists := h.clients[clientID]; exists {
		delete(h.clients, clientID)

		log.Debug().
			Str("client_id", clientID).
			Int("client_count", len(h.clients)).
			Msg("WebSocket client unregistered")
	}
}

// Broadcast sends an event to every client subscribed to the event's entity
func (h *Hub) Broadcast(event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	// Copy recipients to avoid holding lock during send
	recipients := make([]ClientInterface, 0, len(h.clients))
	for _, client := range h.clients {
		if client.Wants(event.Entity) {
			recipients = append(recipients, client)
		}
	}
	h.mu.RUnlock()

	if len(recipients) == 0 {
		return
	}

	for _, client := range recipients {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("event_type", event.Type).
		Int("client_count", len(recipients)).
		Msg("Broadcast event")
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every client, used on shutdown
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := make([]ClientInterface, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]ClientInterface)
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
}
