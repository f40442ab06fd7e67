package port

import (
	"context"

	"condoYaAdmin/internal/modules/realtime/domain"
)

// Broadcaster sends messages to the connected websocket clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler is implemented by the handlers registered per Kafka topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

// SnapshotInvalidator drops cached rows for an entity whose backend state
// changed, so the next page render re-fetches.
type SnapshotInvalidator interface {
	Invalidate(entity string)
}
