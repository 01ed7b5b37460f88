package events

import (
	"sync"
	"time"
)

// Kind identifies what happened to which entity type.
type Kind string

const (
	ProjectCreated  Kind = "project_created"
	ProjectUpdated  Kind = "project_updated"
	ProjectDeleted  Kind = "project_deleted"
	ProjectProgress Kind = "project_progress_updated"
	TaskCreated     Kind = "task_created"
	TaskUpdated     Kind = "task_updated"
	TaskDeleted     Kind = "task_deleted"
)

// Event is one entity mutation announcement. ProjectID carries the owning
// project on task events and the recomputed project on progress events.
type Event struct {
	Kind      Kind      `json:"type"`
	EntityID  string    `json:"entityId"`
	ProjectID string    `json:"projectId,omitempty"`
	Progress  int       `json:"progress,omitempty"`
	At        time.Time `json:"at"`
}

// Subscriber receives every published event. Subscribers run synchronously
// on the publisher's goroutine; they must not call back into the repository.
type Subscriber func(Event)

// Hub fans entity-change events out to registered subscribers. It replaces a
// network push channel: consumers here live in the same process.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]Subscriber
}

// NewHub returns an empty hub. Hubs are injected, never ambient.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]Subscriber)}
}

// Subscribe registers fn and returns a function that removes it again.
func (h *Hub) Subscribe(fn Subscriber) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish delivers evt to every subscriber. A nil hub drops events, so
// callers can hold an optional hub without guarding each publish.
func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.subs {
		fn(evt)
	}
}
