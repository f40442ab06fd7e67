package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every runtime setting of the admin console. Values come from
// the environment; local runs load a .env file in main before calling Load.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Session   SessionConfig
	Kafka     KafkaConfig
	Websocket WebsocketConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// BackendConfig describes how the console reaches the condoYa REST backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// BulkPageSize is the page_size requested when fetching rows in bulk for a table.
	BulkPageSize int
	// PageCap bounds how many envelope pages a single bulk fetch may follow.
	PageCap int
}

type SessionConfig struct {
	CookieName string
	Secret     string
	MaxAge     time.Duration
	Secure     bool
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	GroupID string
	// Topics maps entity keys to the backend change topics the console listens to.
	Topics map[string][]string
}

type WebsocketConfig struct {
	SendBuffer     int
	AllowedActions []string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOrDefault("PORT", "8080"),
			Env:  envOrDefault("APP_ENV", "development"),
		},
		Backend: BackendConfig{
			BaseURL:      strings.TrimSpace(os.Getenv("BACKEND_BASE_URL")),
			Timeout:      envDuration("BACKEND_TIMEOUT", 10*time.Second),
			BulkPageSize: envInt("BACKEND_BULK_PAGE_SIZE", 200),
			PageCap:      envInt("BACKEND_PAGE_CAP", 25),
		},
		Session: SessionConfig{
			CookieName: envOrDefault("SESSION_COOKIE_NAME", "condoya-admin"),
			Secret:     strings.TrimSpace(os.Getenv("SESSION_SECRET")),
			MaxAge:     envDuration("SESSION_MAX_AGE", 12*time.Hour),
			Secure:     envOrDefault("APP_ENV", "development") == "production",
		},
		Kafka: KafkaConfig{
			Brokers: splitList(firstNonEmptyEnv("KAFKA_BROKERS", "KAFKA_BROKER")),
			GroupID: envOrDefault("KAFKA_GROUP_ID", "condoya-admin"),
			Topics:  parseTopics(os.Getenv("KAFKA_TOPICS")),
		},
		Websocket: WebsocketConfig{
			SendBuffer:     envInt("WS_SEND_BUFFER", 8),
			AllowedActions: splitList(envOrDefault("WS_ALLOWED_ACTIONS", "created,updated,deleted")),
		},
		Logging: LoggingConfig{
			Level:     envOrDefault("LOG_LEVEL", "info"),
			Format:    envOrDefault("LOG_FORMAT", "text"),
			Directory: envOrDefault("LOG_DIR", "./logs"),
		},
	}
	cfg.Kafka.Enabled = len(cfg.Kafka.Brokers) > 0

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// parseTopics reads "entity:topic1|topic2,entity2:topic3" into the topic map.
func parseTopics(raw string) map[string][]string {
	raw = strings.TrimSpace(raw)
	topics := make(map[string][]string)
	if raw == "" {
		return topics
	}
	for _, group := range strings.Split(raw, ",") {
		entity, list, found := strings.Cut(group, ":")
		entity = strings.TrimSpace(entity)
		if !found || entity == "" {
			continue
		}
		for _, topic := range strings.Split(list, "|") {
			if trimmed := strings.TrimSpace(topic); trimmed != "" {
				topics[entity] = append(topics[entity], trimmed)
			}
		}
	}
	return topics
}
