package domain

import "time"

// System topics emitted by the console itself rather than the backend.
const (
	SystemEntity         = "system"
	ActionConnected      = "connected"
	TopicSystemConnected = "system.connected"
)

// Message is one entity-change notification flowing from the backend's Kafka
// topics to connected browsers.
type Message struct {
	Topic      string    `json:"topic"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId,omitempty"`
	Data       any       `json:"data,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
