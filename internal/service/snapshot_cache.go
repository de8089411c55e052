package service

import (
	"strings"
	"sync"
	"time"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/metrics"
)

// snapshotCache memoizes aggregated boards for a short TTL so a wall of
// displays polling the same date does not re-aggregate per request. Change
// events invalidate the affected date; the TTL bounds staleness if an event
// is missed.
type snapshotCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]snapshotEntry
}

type snapshotEntry struct {
	response  *dto.PackingBoardResponse
	expiresAt time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		entries: make(map[string]snapshotEntry),
	}
}

// setTTL adjusts the TTL for subsequent Set calls.
func (c *snapshotCache) setTTL(ttl time.Duration) {
	c.mu.Lock()
	c.ttl = ttl
	c.mu.Unlock()
}

// snapshotKey builds the cache key for a date and board variant.
func snapshotKey(date, variant string) string {
	return date + "|" + variant
}

// Get returns a cached board, or nil when absent or expired.
func (c *snapshotCache) Get(key string) *dto.PackingBoardResponse {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		metrics.SnapshotCacheOperations.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.SnapshotCacheOperations.WithLabelValues("hit").Inc()
	return entry.response
}

// Set stores a board under key for the cache TTL.
func (c *snapshotCache) Set(key string, response *dto.PackingBoardResponse) {
	c.mu.Lock()
	c.entries[key] = snapshotEntry{response: response, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// InvalidateDate drops every variant cached for a delivery date.
func (c *snapshotCache) InvalidateDate(date string) {
	prefix := date + "|"
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			metrics.SnapshotCacheOperations.WithLabelValues("invalidate").Inc()
		}
	}
	c.mu.Unlock()
}

// Clear drops everything, used for changes that affect all dates.
func (c *snapshotCache) Clear() {
	c.mu.Lock()
	for key := range c.entries {
		delete(c.entries, key)
		metrics.SnapshotCacheOperations.WithLabelValues("invalidate").Inc()
	}
	c.mu.Unlock()
}
