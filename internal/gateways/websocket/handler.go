package websocket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatFrame is one inbound message over the socket. OccurredAt is optional;
// missing or zero means "now".
type ChatFrame struct {
	Content    string     `json:"content"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

func (h *Hub) ServeWS(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		h.logger.Warnw("WebSocket connection rejected: user_id missing",
			"client_ip", c.ClientIP(),
			"user_agent", c.GetHeader("User-Agent"),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID == 0 {
		h.logger.Warnw("WebSocket connection rejected: invalid user_id",
			"user_id", userIDStr,
			"client_ip", c.ClientIP(),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a non-zero integer"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("Failed to upgrade connection",
			"user_id", userID,
			"error", err,
		)
		return
	}
	defer conn.Close()

	client := &Client{
		hub:    h,
		conn:   conn,
		ID:     generateClientID(),
		UserID: userID,
		send:   make(chan interface{}, 16),
	}

	h.logger.Infow("WebSocket connection established",
		"client_id", client.ID,
		"user_id", client.UserID,
		"client_ip", c.ClientIP(),
	)

	h.register <- client
	go client.writePump()

	h.readLoop(c, client)
	h.unregister <- client
}

// readLoop consumes frames until the connection drops. One frame is one
// activity event; a failed record is reported back on the socket and the
// connection stays up, the source may redeliver.
func (h *Hub) readLoop(c *gin.Context, client *Client) {
	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame ChatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.logger.Warnw("Dropping malformed frame",
				"client_id", client.ID,
				"user_id", client.UserID,
				"error", err,
			)
			continue
		}

		occurredAt := time.Now()
		if frame.OccurredAt != nil && !frame.OccurredAt.IsZero() {
			occurredAt = *frame.OccurredAt
		}

		if err := h.activitySvc.RecordActivity(c.Request.Context(), client.UserID, occurredAt); err != nil {
			h.logger.Errorw("Failed to record activity",
				"client_id", client.ID,
				"user_id", client.UserID,
				"error", err,
			)
			select {
			case client.send <- gin.H{"event": "error", "error": "failed to record activity"}:
			default:
			}
		}
	}
}
