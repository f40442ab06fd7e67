package handler

import (
	"context"
	"strings"

	"condoYaAdmin/internal/modules/realtime/application/port"
	"condoYaAdmin/internal/modules/realtime/domain"
)

// EntityStreamHandler forwards backend change events for one entity to the
// websocket clients and drops the entity's cached rows so the next render
// re-fetches. Actions outside the allowed set are ignored as noise.
type EntityStreamHandler struct {
	entity         string
	kafkaTopic     string
	allowedActions map[string]struct{}
	broadcaster    port.Broadcaster
	invalidator    port.SnapshotInvalidator
}

func NewEntityStreamHandler(entity, kafkaTopic string, allowedActions []string, broadcaster port.Broadcaster, invalidator port.SnapshotInvalidator) *EntityStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &EntityStreamHandler{
		entity:         strings.TrimSpace(entity),
		kafkaTopic:     kafkaTopic,
		allowedActions: actionSet,
		broadcaster:    broadcaster,
		invalidator:    invalidator,
	}
}

func (h *EntityStreamHandler) Topic() string { return h.kafkaTopic }

func (h *EntityStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}
	if msg.Entity == "" {
		msg.Entity = h.entity
	}
	if msg.Topic == "" && msg.Entity != "" && msg.Action != "" {
		msg.Topic = msg.Entity + "." + msg.Action
	}
	if h.invalidator != nil {
		h.invalidator.Invalidate(h.entity)
	}
	h.broadcaster.Broadcast(ctx, msg)
	return nil
}

var _ port.TopicHandler = (*EntityStreamHandler)(nil)
