package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Key   string
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers and event broadcasting. Subscriptions are
// keyed by an arbitrary string; here the employee ID.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for a key and returns the event
// channel and cleanup function.
func (h *Hub) Subscribe(key string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[chan Event]struct{})
	}
	h.subscribers[key][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[key], ch)
		close(ch)
		if len(h.subscribers[key]) == 0 {
			delete(h.subscribers, key)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a key
func (h *Hub) Publish(key string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[key]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// Keys returns the keys that currently have at least one subscriber.
func (h *Hub) Keys() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := make([]string, 0, len(h.subscribers))
	for key := range h.subscribers {
		keys = append(keys, key)
	}
	return keys
}

// SubscriberCount returns the number of active subscribers for a key
func (h *Hub) SubscriberCount(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[key]; ok {
		return len(subs)
	}
	return 0
}
