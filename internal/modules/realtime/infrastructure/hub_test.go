package infrastructure

import (
	"context"
	"strings"
	"testing"

	"condoYaAdmin/internal/modules/realtime/domain"
)

func TestHub_BroadcastReachesEntitySubscribers(t *testing.T) {
	hub := NewHub()
	subscriber := NewClient(hub, nil, "ana", 4)
	other := NewClient(hub, nil, "luis", 4)
	hub.AttachClient(subscriber, []string{"units"})
	hub.AttachClient(other, []string{"pets"})

	hub.Broadcast(context.Background(), &domain.Message{Entity: "units", Action: "created"})

	select {
	case data := <-subscriber.send:
		if !strings.Contains(string(data), `"units"`) {
			t.Fatalf("unexpected payload: %s", data)
		}
	default:
		t.Fatal("expected units subscriber to receive the message")
	}
	select {
	case data := <-other.send:
		t.Fatalf("pets subscriber must not receive units messages, got %s", data)
	default:
	}
}

func TestHub_GlobalSubscriberReceivesEverything(t *testing.T) {
	hub := NewHub()
	global := NewClient(hub, nil, "ana", 4)
	hub.AttachClientToAll(global)

	hub.Broadcast(context.Background(), &domain.Message{Entity: "units", Action: "created"})
	hub.Broadcast(context.Background(), &domain.Message{Entity: "pets", Action: "deleted"})

	if len(global.send) != 2 {
		t.Fatalf("expected 2 queued messages, got %d", len(global.send))
	}
}

func TestHub_SendAfterDetachIsRejectedWithoutPanic(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil, "ana", 1)
	hub.AttachClientToAll(client)

	hub.detachClient(client)

	if client.enqueue([]byte("late")) {
		t.Fatal("expected enqueue rejected after detach")
	}
	// A broadcast racing the detach must drop the message, never panic.
	client.SendDomainMessage(&domain.Message{Entity: "units", Action: "created"})
	hub.Broadcast(context.Background(), &domain.Message{Entity: "units", Action: "created"})
}

func TestHub_DetachIsIdempotent(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil, "ana", 1)
	hub.AttachClient(client, []string{"units"})

	hub.detachClient(client)
	hub.detachClient(client)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if len(hub.clients) != 0 || len(hub.entities) != 0 {
		t.Fatalf("expected empty hub, got %d clients %d entities", len(hub.clients), len(hub.entities))
	}
}
