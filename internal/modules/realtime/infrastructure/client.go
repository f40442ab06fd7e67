package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"condoYaAdmin/internal/modules/realtime/domain"
)

// Client is one browser connection attached to the hub.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	quit       chan struct{}
	id         string
	username   string
	subscribed map[string]struct{}
	receiveAll bool
	closeOnce  sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, username string, buf int) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		quit:       make(chan struct{}),
		id:         uuid.NewString(),
		username:   username,
		subscribed: make(map[string]struct{}),
	}
}

// close signals the pumps to stop. The send channel is never closed, so a
// broadcast racing a detach cannot panic; undelivered messages are dropped
// with the client.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.quit)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// enqueue hands data to the write pump. False means the client is detached or
// its buffer is full; either way the message is not delivered.
func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.quit:
		return false
	default:
	}
	select {
	case c.send <- data:
		return true
	case <-c.quit:
		return false
	default:
		return false
	}
}

// SendDomainMessage enqueues msg for the write pump, detaching the client when
// its buffer is full.
func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	if !c.enqueue(data) {
		slog.Warn("websocket send buffer full", slog.String("clientId", c.id), slog.String("username", c.username))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-c.quit:
			return
		case msg := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				slog.Warn("websocket ping error", slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump keeps the read deadline honest; the console never acts on inbound
// frames, so payloads are discarded.
func (c *Client) ReadPump() {
	c.conn.SetReadLimit(1 << 16)
	_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	defer c.hub.detachClient(c)
	for {
		_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("clientId", c.id), slog.Any("error", err))
			}
			return
		}
	}
}
