package websocket

import (
	"log"
	"sync"
	"time"

	"lawfirm-server/models"
)

// Event types pushed to connected dashboards.
const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

// Message is one event sent to connected admin dashboards.
type Message struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Hub manages all connected admin dashboard clients and fans events out to
// them, so an open detail view never shows a stale booking status.
type Hub struct {
	// Registered clients keyed by connection, since the same admin may
	// have several dashboard tabs open
	clients map[*Client]bool

	// Broadcast channel for events to all clients
	Broadcast chan *Message

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan *Message, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Dashboard client registered: user=%d", client.UserID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Dashboard client unregistered: user=%d", client.UserID)

		case message := <-h.Broadcast:
			h.broadcastMessage(message)
		}
	}
}

// broadcastMessage sends a message to all connected clients
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if err := client.SendMessage(message); err != nil {
			log.Printf("⚠️ Failed to queue message for user %d: %v", client.UserID, err)
		}
	}
}

// ClientCount returns the number of connected dashboard clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NotifyBookingCreated pushes a new booking to every open dashboard.
func (h *Hub) NotifyBookingCreated(booking models.Booking) {
	h.notify(&Message{
		Type:      EventBookingCreated,
		Timestamp: time.Now(),
		Data:      booking,
	})
}

// NotifyBookingStatusChanged pushes a booking's new status to every open
// dashboard after a transition is persisted.
func (h *Hub) NotifyBookingStatusChanged(booking models.Booking) {
	h.notify(&Message{
		Type:      EventBookingStatusChanged,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"id":               booking.ID,
			"status":           booking.Status,
			"rejection_reason": booking.RejectionReason,
			"booking":          booking,
		},
	})
}

func (h *Hub) notify(message *Message) {
	select {
	case h.Broadcast <- message:
	default:
		log.Printf("⚠️ Dashboard broadcast channel full, dropping %s event", message.Type)
	}
}
