// Package kds pushes order lifecycle events to kitchen display clients
// connected over websocket.
package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/utils"
)

// Event types
const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
	EventOrderDeleted = "order_deleted"
)

const (
	writeWait = 5 * time.Second

	// sendBuffer is how many events a client may fall behind before it is
	// dropped.
	sendBuffer = 16
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub holds the connected kitchen display clients. Each client has its own
// writer goroutine, so Broadcast never waits on the network.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Register adds a connection to the broadcast set and starts its writer.
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writePump(c)
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(conn)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// PublishOrder broadcasts an order event. Delivery failures only drop the
// failing client.
func (h *Hub) PublishOrder(event string, order models.Order) {
	h.Broadcast(Message{Event: event, Data: order})
}

// Broadcast queues msg for every client. A client whose queue is full is
// dropped instead of slowing down the caller.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("kds: marshal message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.WithFields(logrus.Fields{
		"event":   msg.Event,
		"clients": len(h.clients),
	}).Debug("kds: broadcasting")

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.InfoLogger.Info("kds: dropping slow client")
			h.drop(conn)
		}
	}
}

func (h *Hub) writePump(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.InfoLogger.WithError(err).Info("kds: dropping client")
			h.Unregister(c.conn)
			return
		}
	}
}

// drop must be called with the mutex held.
func (h *Hub) drop(conn *websocket.Conn) {
	c, ok := h.clients[conn]
	if !ok {
		return
	}
	delete(h.clients, conn)
	close(c.send)
	conn.Close()
}
