package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// OrderEvent is pushed to the admin dashboard whenever an order is placed or
// its status changes.
type OrderEvent struct {
	Type    string             `json:"type"`
	OrderID uint               `json:"order_id"`
	UserID  uint               `json:"user_id"`
	Status  models.OrderStatus `json:"status"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// GET /orders/ws
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	// Drain until the client goes away; the feed is write-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastOrderEvent fans an event out to every connected dashboard client.
// Dead connections are dropped on their next read, not here.
func BroadcastOrderEvent(event OrderEvent) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		_ = client.WriteJSON(event)
	}
}
