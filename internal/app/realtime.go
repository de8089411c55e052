package app

import (
	"github.com/rs/zerolog/log"

	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/realtime"
)

// RealtimeComponents holds the change-notification hub and notifier.
type RealtimeComponents struct {
	Hub      *realtime.Hub
	Notifier realtime.Notifier
}

// InitializeRealtime wires the change-notification pipeline. With a Redis URL
// configured, change events fan out through Redis pub/sub so every instance
// sees them; without one, notifications stay in-process.
func InitializeRealtime(cfg config.RedisConfig) *RealtimeComponents {
	hub := realtime.NewHub()

	if cfg.URL != "" {
		notifier, err := realtime.NewRedisNotifier(cfg.URL, hub)
		if err == nil {
			log.Info().Msg("Connected to Redis for change notifications")
			return &RealtimeComponents{Hub: hub, Notifier: notifier}
		}
		log.Warn().Err(err).Msg("Redis unavailable - falling back to in-process notifications")
	}

	return &RealtimeComponents{Hub: hub, Notifier: realtime.NewLocalNotifier(hub)}
}

// Close shuts the notifier down.
func (c *RealtimeComponents) Close() {
	if c.Notifier != nil {
		if err := c.Notifier.Close(); err != nil {
			log.Warn().Err(err).Msg("Notifier close failed")
		}
	}
}
