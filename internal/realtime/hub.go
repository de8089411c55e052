package realtime

import (
	"sync"

	"github.com/haugsdal/packboard/internal/metrics"
)

// subscriberBuffer is the per-subscriber channel capacity. A display that
// falls this far behind misses events and catches up on its next refetch.
const subscriberBuffer = 16

// Hub fans change events out to in-process subscribers (SSE connections and
// the snapshot cache).
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan ChangeEvent]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan ChangeEvent]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel.
func (h *Hub) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan ChangeEvent) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers an event to every subscriber. Slow subscribers are
// skipped rather than blocking the broadcast.
func (h *Hub) Broadcast(event ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
			metrics.RecordChangeEvent("out")
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
