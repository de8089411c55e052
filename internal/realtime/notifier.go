package realtime

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/haugsdal/packboard/internal/metrics"
)

// Channel is the Redis channel change events travel on.
const Channel = "packboard:changes"

// Notifier publishes change events so every service instance sees them.
type Notifier interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Ping(ctx context.Context) error
	Close() error
}

// RedisNotifier publishes events to Redis and relays the channel into the
// local hub, so changes made by other instances reach this instance's
// subscribers too.
type RedisNotifier struct {
	client *redis.Client
	hub    *Hub
	pubsub *redis.PubSub
	done   chan struct{}
}

// NewRedisNotifier connects to Redis and starts relaying the change channel
// into hub. The redisURL format is redis://[:password@]host[:port][/database].
func NewRedisNotifier(redisURL string, hub *Hub) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	n := &RedisNotifier{
		client: client,
		hub:    hub,
		pubsub: client.Subscribe(context.Background(), Channel),
		done:   make(chan struct{}),
	}
	go n.relay()
	return n, nil
}

// relay forwards Redis messages to the local hub until Close.
func (n *RedisNotifier) relay() {
	defer close(n.done)

	for msg := range n.pubsub.Channel() {
		event, err := UnmarshalChangeEvent([]byte(msg.Payload))
		if err != nil {
			log.Warn().Err(err).Str("payload", msg.Payload).Msg("Dropping malformed change event")
			continue
		}
		metrics.RecordChangeEvent("in")
		n.hub.Broadcast(event)
	}
}

// Publish sends an event to the Redis channel. The local hub receives it
// through the relay like every other instance.
func (n *RedisNotifier) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := event.Marshal()
	if err != nil {
		return err
	}
	if err := n.client.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close stops the relay and closes the Redis connection.
func (n *RedisNotifier) Close() error {
	_ = n.pubsub.Close()
	<-n.done
	return n.client.Close()
}

// LocalNotifier broadcasts directly to the in-process hub. Used when Redis
// is not configured; single-instance deployments lose nothing.
type LocalNotifier struct {
	hub *Hub
}

// NewLocalNotifier creates a notifier that skips Redis entirely.
func NewLocalNotifier(hub *Hub) *LocalNotifier {
	return &LocalNotifier{hub: hub}
}

// Publish broadcasts the event to local subscribers.
func (n *LocalNotifier) Publish(_ context.Context, event ChangeEvent) error {
	metrics.RecordChangeEvent("in")
	n.hub.Broadcast(event)
	return nil
}

// Ping always succeeds; there is no external dependency.
func (n *LocalNotifier) Ping(context.Context) error { return nil }

// Close is a no-op.
func (n *LocalNotifier) Close() error { return nil }
