package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"condoYaAdmin/internal/modules/realtime/domain"
)

// Hub fans entity-change messages out to connected browsers. Clients either
// follow specific entities or receive everything.
type Hub struct {
	entities map[string]map[*Client]struct{}
	clients  map[string]*Client
	global   map[*Client]struct{}
	mu       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		entities: make(map[string]map[*Client]struct{}),
		clients:  make(map[string]*Client),
		global:   make(map[*Client]struct{}),
	}
}

func (h *Hub) registerClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.clients[c.id]; ok && existing != c {
		h.detachLocked(existing)
	}
	h.clients[c.id] = c
	slog.Info("ws client registered", slog.String("clientId", c.id), slog.String("username", c.username))
}

func (h *Hub) subscribe(c *Client, entity string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.entities[entity] == nil {
		h.entities[entity] = make(map[*Client]struct{})
	}
	h.entities[entity][c] = struct{}{}
	c.subscribed[entity] = struct{}{}
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	for entity := range c.subscribed {
		if subs, ok := h.entities[entity]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.entities, entity)
			}
		}
	}
	delete(h.clients, c.id)
	if c.receiveAll {
		delete(h.global, c)
	}
	c.close()
	slog.Info("ws client detached", slog.String("clientId", c.id), slog.String("username", c.username))
}

// Broadcast delivers msg to every client following msg.Entity plus the global
// subscribers. Clients with a full send buffer are detached rather than
// blocking the fan-out.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	subscribers := h.entities[msg.Entity]
	clients := make([]*Client, 0, len(subscribers)+len(h.global))
	seen := make(map[*Client]struct{}, len(subscribers)+len(h.global))
	for c := range subscribers {
		clients = append(clients, c)
		seen[c] = struct{}{}
	}
	for c := range h.global {
		if _, ok := seen[c]; ok {
			continue
		}
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(data) {
			go h.detachClient(c)
		}
	}
}

// AttachClient registers the client and subscribes it to the given entities.
func (h *Hub) AttachClient(c *Client, entities []string) {
	h.registerClient(c)
	for _, entity := range entities {
		if trimmed := strings.TrimSpace(entity); trimmed != "" {
			h.subscribe(c, trimmed)
		}
	}
	slog.Info("ws client attached", slog.String("clientId", c.id), slog.Any("entities", entities))
}

// AttachClientToAll registers the client as a global subscriber receiving
// every broadcasted message.
func (h *Hub) AttachClientToAll(c *Client) {
	c.receiveAll = true
	h.registerClient(c)
	h.mu.Lock()
	h.global[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("ws client attached to all entities", slog.String("clientId", c.id), slog.String("username", c.username))
}
