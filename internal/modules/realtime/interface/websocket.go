package transport

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	authtransport "condoYaAdmin/internal/modules/auth/interface"
	"condoYaAdmin/internal/modules/realtime/domain"
	"condoYaAdmin/internal/modules/realtime/infrastructure"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			return true
		}
		return strings.Contains(origin, r.Host)
	},
}

// NewNotificationsWebsocketHandler exposes /ws/notifications for logged-in
// sessions and streams entity-change messages so open tables can reload.
// An optional ?entities=units,pets narrows the stream; without it the client
// receives every change.
func NewNotificationsWebsocketHandler(hub *infrastructure.Hub, sessions *authtransport.SessionManager, sendBuffer int) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := sessions.Current(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "login required")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("notifications ws upgrade failed", slog.String("ip", c.RealIP()), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, session.DisplayName, sendBuffer)

		entities := splitEntities(c.QueryParam("entities"))
		if len(entities) == 0 {
			hub.AttachClientToAll(client)
		} else {
			hub.AttachClient(client, entities)
		}

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(&domain.Message{
			Topic:     domain.TopicSystemConnected,
			Entity:    domain.SystemEntity,
			Action:    domain.ActionConnected,
			Timestamp: time.Now().UTC(),
		})

		slog.Info("notifications ws connected", slog.String("username", session.DisplayName), slog.String("ip", c.RealIP()), slog.Any("entities", entities))
		return nil
	}
}

func splitEntities(raw string) []string {
	parts := strings.Split(raw, ",")
	entities := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entities = append(entities, trimmed)
		}
	}
	return entities
}
