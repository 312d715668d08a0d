package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EventPublisher is satisfied by *Publisher; nil-able when no broker is
// configured.
type EventPublisher interface {
	Publish(ctx context.Context, userID int, n Notification) error
}

// Notifier pushes a notification over the user's WebSocket connection and
// mirrors it to the durable queue. The socket send result is the returned
// flag; publish failures never fail the caller.
type Notifier struct {
	registry  *Registry
	publisher EventPublisher
	pool      WorkerPoolI
}

func NewNotifier(registry *Registry, publisher EventPublisher) *Notifier {
	return &Notifier{
		registry:  registry,
		publisher: publisher,
		pool:      NewWorkerPool(10),
	}
}

func (n *Notifier) Send(ctx context.Context, userID int, notification Notification) bool {
	delivered := n.registry.Send(userID, notification)

	if n.publisher != nil {
		err := n.pool.AddTask(ctx, func() error {
			pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return n.publisher.Publish(pubCtx, userID, notification)
		})
		if err != nil {
			zap.L().Warn("can't queue notification publish", zap.Error(err))
		}
	}

	return delivered
}

func (n *Notifier) Close() {
	n.pool.Close()
}
