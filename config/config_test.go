package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "packboard", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.EventsTTL)
		assert.Empty(t, cfg.Redis.URL)
		assert.Equal(t, 15*time.Second, cfg.Display.SnapshotTTL)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		_ = os.Setenv("MONGODB_DATABASE", "bakery")
		_ = os.Setenv("MONGODB_EVENTS_TTL", "168h")
		_ = os.Setenv("REDIS_URL", "redis://cache:6379/0")
		_ = os.Setenv("SNAPSHOT_TTL", "5s")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "bakery", cfg.Database.DatabaseName)
		assert.Equal(t, 7*24*time.Hour, cfg.Database.EventsTTL)
		assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
		assert.Equal(t, 5*time.Second, cfg.Display.SnapshotTTL)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("LOG_PRETTY", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.False(t, cfg.Logging.Pretty)
	})

	t.Run("always includes the development CORS origins", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://board.bakery.no , https://admin.bakery.no")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://board.bakery.no")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.bakery.no")
	})

	t.Run("defaults CORS origins when unset", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	})

	t.Run("circuit breaker defaults", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
		assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
	})
}
