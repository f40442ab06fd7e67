package broker

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestDecodeMessage_StructuredEvent(t *testing.T) {
	m := kafka.Message{
		Topic: "units.created",
		Value: []byte(`{"action":"created","id":7,"data":{"code":"A-101"}}`),
	}

	msg := decodeMessage(m)

	if msg.Entity != "units" {
		t.Fatalf("expected entity inferred from topic, got %q", msg.Entity)
	}
	if msg.Action != "created" {
		t.Fatalf("unexpected action: %q", msg.Action)
	}
	if msg.ResourceID != "7" {
		t.Fatalf("expected numeric id coerced, got %q", msg.ResourceID)
	}
	if msg.Topic != "units.created" {
		t.Fatalf("unexpected topic: %q", msg.Topic)
	}
}

func TestDecodeMessage_PayloadFieldsWinOverTopicInference(t *testing.T) {
	m := kafka.Message{
		Topic: "units.events",
		Value: []byte(`{"entity":"units","action":"deleted","resourceId":"42"}`),
	}

	msg := decodeMessage(m)

	if msg.Entity != "units" || msg.Action != "deleted" {
		t.Fatalf("unexpected entity/action: %q %q", msg.Entity, msg.Action)
	}
	if msg.ResourceID != "42" {
		t.Fatalf("unexpected resource id: %q", msg.ResourceID)
	}
}

func TestDecodeMessage_KafkaTopicIsTheRoutingTopic(t *testing.T) {
	m := kafka.Message{
		Topic: "units.created",
		Value: []byte(`{"action":"created","topic":"pets.created"}`),
	}

	msg := decodeMessage(m)

	if msg.Topic != "units.created" {
		t.Fatalf("expected the record's own topic kept for routing, got %q", msg.Topic)
	}
}

func TestDecodeMessage_OpaquePayload(t *testing.T) {
	m := kafka.Message{
		Topic: "pets.deleted",
		Value: []byte("not json at all"),
	}

	msg := decodeMessage(m)

	if msg.Entity != "pets" || msg.Action != "deleted" {
		t.Fatalf("expected topic convention fallback, got %q %q", msg.Entity, msg.Action)
	}
	if msg.Data != "not json at all" {
		t.Fatalf("expected raw payload kept, got %v", msg.Data)
	}
}

func TestInferEntityActionFromTopic(t *testing.T) {
	entity, action := inferEntityActionFromTopic("condo.units.created")
	if entity != "units" || action != "created" {
		t.Fatalf("unexpected inference: %q %q", entity, action)
	}

	entity, action = inferEntityActionFromTopic("heartbeat")
	if entity != "heartbeat" || action != "unknown" {
		t.Fatalf("unexpected fallback: %q %q", entity, action)
	}
}
