package notify

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeConnection          = "connection"
	TypeNewApplication      = "new_application"
	TypeApplicationAccepted = "application_accepted"
	TypeApplicationRejected = "application_rejected"
	TypeServiceCompleted    = "service_completed"
	TypeNewMessage          = "new_message"
	TypeNewRating           = "new_rating"
)

// Notification is the envelope pushed over WebSocket and mirrored to the
// durable queue.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ServiceID int    `json:"serviceId,omitempty"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

func NewNotification(notificationType string, serviceID int, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      notificationType,
		ServiceID: serviceID,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
