// Package projection builds local read models from observed events.
// Handles ordering and accumulation only; it never emits events or
// touches the engines.
package projection

import (
	"sync"
	"time"

	"draw-lab/domain"
	"draw-lab/domain/event"
)

// Entry is one committed draw on the timeline.
type Entry struct {
	Winner        domain.Participant
	EligibleCount int
	At            time.Time
}

// Timeline accumulates committed winners in arrival order, oldest
// first. Unlike the draw history it keeps the commit timestamps and the
// size of the pool each winner was drawn from.
type Timeline struct {
	mu      sync.Mutex
	entries []Entry
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Handle implements event.Handler; anything but a commit is ignored.
func (t *Timeline) Handle(e event.Event) {
	if e.Type != event.WinnerCommittedType {
		return
	}
	payload, ok := e.Payload.(event.WinnerCommitted)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, Entry{
		Winner:        payload.Winner,
		EligibleCount: payload.EligibleCount,
		At:            e.CreatedAt,
	})
}

// Entries returns a copy of the timeline, oldest first.
func (t *Timeline) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
