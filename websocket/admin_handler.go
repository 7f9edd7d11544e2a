package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminHandler upgrades authenticated dashboard connections onto the hub.
type AdminHandler struct {
	hub *Hub
}

// NewAdminHandler creates a handler bound to the given hub
func NewAdminHandler(hub *Hub) *AdminHandler {
	return &AdminHandler{hub: hub}
}

// HandleAdmin serves the dashboard event stream. The WebSocket auth
// middleware has already validated the token and set user_id.
func (h *AdminHandler) HandleAdmin(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		log.Printf("❌ No user ID found for dashboard WebSocket")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	log.Printf("🖥️ Dashboard connected: user=%v at %s", uid, time.Now().UTC().Format(time.RFC3339))
	ServeWebSocket(h.hub, c.Writer, c.Request, uid)
}
