package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Registry tracks live WebSocket connections per user. One connection per
// user: a reconnect replaces the previous one.
type Registry struct {
	mu      sync.RWMutex
	clients map[int]*Client
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[int]*Client),
	}
}

func (r *Registry) Register(userID int, c *Client) {
	r.mu.Lock()
	prev := r.clients[userID]
	r.clients[userID] = c
	r.mu.Unlock()

	if prev != nil {
		prev.closeSend()
	}
	zap.L().Info("websocket client connected", zap.Int("userID", userID))
}

// Unregister removes the connection, unless the user already reconnected
// with a newer one.
func (r *Registry) Unregister(userID int, c *Client) {
	r.mu.Lock()
	if r.clients[userID] == c {
		delete(r.clients, userID)
	}
	r.mu.Unlock()
	zap.L().Info("websocket client disconnected", zap.Int("userID", userID))
}

// Send delivers a notification to the user's live connection. Returns false
// when the user is offline or the connection's buffer is full; delivery is
// best-effort by contract.
func (r *Registry) Send(userID int, n Notification) bool {
	r.mu.RLock()
	client := r.clients[userID]
	r.mu.RUnlock()

	if client == nil {
		zap.L().Debug("no websocket connection for user", zap.Int("userID", userID))
		return false
	}
	return client.enqueue(n)
}
