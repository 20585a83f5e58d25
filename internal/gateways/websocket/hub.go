package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"tracker/internal/app/activity"
	"tracker/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub    *Hub
	conn   ClientConn
	ID     string
	UserID int64
	send   chan interface{}
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub is the inbound event source: each connected chat client delivers one
// frame per message sent, and the hub records it through the activity
// service. Recorded events fan back out to all clients via the event bus.
type Hub struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	activitySvc activity.Service
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, activitySvc activity.Service, eventBus *utils.EventBus) *Hub {
	return &Hub{
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		clients:     make(map[*Client]bool),
		activitySvc: activitySvc,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"user_id", client.UserID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"user_id", client.UserID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-h.eventBus.SubscribeCh():
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// slow consumer, drop the notification
				}
			}
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
