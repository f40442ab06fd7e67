package handler

import (
	"context"
	"testing"

	"condoYaAdmin/internal/modules/realtime/domain"
)

type recordingBroadcaster struct {
	messages []*domain.Message
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg *domain.Message) {
	b.messages = append(b.messages, msg)
}

type recordingInvalidator struct {
	entities []string
}

func (i *recordingInvalidator) Invalidate(entity string) {
	i.entities = append(i.entities, entity)
}

func TestHandle_FiltersDisallowedActions(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	invalidator := &recordingInvalidator{}
	h := NewEntityStreamHandler("units", "units.events", []string{"created", "updated", "deleted"}, broadcaster, invalidator)

	if err := h.Handle(context.Background(), &domain.Message{Action: "viewed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(broadcaster.messages) != 0 {
		t.Fatal("expected filtered action not broadcast")
	}
	if len(invalidator.entities) != 0 {
		t.Fatal("expected filtered action not to invalidate snapshots")
	}
}

func TestHandle_ActionFilterIsCaseInsensitive(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	h := NewEntityStreamHandler("units", "units.events", []string{"created"}, broadcaster, nil)

	if err := h.Handle(context.Background(), &domain.Message{Action: "CREATED"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(broadcaster.messages) != 1 {
		t.Fatal("expected uppercase action accepted")
	}
}

func TestHandle_BackfillsEntityAndTopic(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	invalidator := &recordingInvalidator{}
	h := NewEntityStreamHandler("pets", "pets.events", []string{"created"}, broadcaster, invalidator)

	if err := h.Handle(context.Background(), &domain.Message{Action: "created"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(broadcaster.messages) != 1 {
		t.Fatal("expected one broadcast")
	}
	msg := broadcaster.messages[0]
	if msg.Entity != "pets" {
		t.Fatalf("expected entity backfilled, got %q", msg.Entity)
	}
	if msg.Topic != "pets.created" {
		t.Fatalf("expected topic backfilled, got %q", msg.Topic)
	}
	if len(invalidator.entities) != 1 || invalidator.entities[0] != "pets" {
		t.Fatalf("expected pets snapshot invalidated, got %v", invalidator.entities)
	}
}

func TestHandle_EmptyAllowedSetAcceptsEverything(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	h := NewEntityStreamHandler("guards", "guards.events", nil, broadcaster, nil)

	if err := h.Handle(context.Background(), &domain.Message{Entity: "guards", Action: "archived"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(broadcaster.messages) != 1 {
		t.Fatal("expected message broadcast without an action filter")
	}
}
