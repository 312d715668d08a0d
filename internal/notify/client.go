package notify

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client wraps one WebSocket connection. Writes go through the send channel
// so only the write pump touches the connection.
type Client struct {
	userID   int
	conn     *websocket.Conn
	registry *Registry

	send      chan Notification
	closeOnce sync.Once
}

func NewClient(userID int, conn *websocket.Conn, registry *Registry) *Client {
	return &Client{
		userID:   userID,
		conn:     conn,
		registry: registry,
		send:     make(chan Notification, 32),
	}
}

func (c *Client) enqueue(n Notification) bool {
	defer func() {
		// send may race with closeSend on reconnect; a dropped
		// notification is acceptable, a panic is not
		_ = recover()
	}()
	select {
	case c.send <- n:
		return true
	default:
		zap.L().Warn("websocket send buffer full, dropping notification",
			zap.Int("userID", c.userID), zap.String("type", n.Type))
		return false
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// Start registers the client and runs the pumps until the connection dies.
func (c *Client) Start() {
	c.registry.Register(c.userID, c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.registry.Unregister(c.userID, c)
		c.closeSend()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		zap.L().Error("failed to set read deadline", zap.Error(err))
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// clients do not talk back; reads only service control frames
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("unexpected websocket close", zap.Int("userID", c.userID), zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case n, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(n); err != nil {
				zap.L().Debug("failed to write notification", zap.Int("userID", c.userID), zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
