// Package observability aggregates session telemetry for the stats view.
package observability

import (
	"log/slog"
	"sync/atomic"

	"draw-lab/domain/event"
)

// StatsSnapshot is a point-in-time copy of the session counters.
type StatsSnapshot struct {
	NamesImported   uint64
	DrawsCompleted  uint64
	RevealTicks     uint64
	GroupsGenerated uint64
	RostersCleared  uint64
	LastWinner      string
}

// DrawStats collects session counters from the telemetry stream.
// Counters are atomic; the last winner is guarded by the atomic value.
// It implements event.Handler and is registered on the telemetry worker.
type DrawStats struct {
	log             *slog.Logger
	namesImported   uint64
	drawsCompleted  uint64
	revealTicks     uint64
	groupsGenerated uint64
	rostersCleared  uint64
	lastWinner      atomic.Value // string
}

func NewDrawStats(log *slog.Logger) *DrawStats {
	s := &DrawStats{log: log}
	s.lastWinner.Store("")
	return s
}

func (s *DrawStats) Handle(e event.Event) {
	switch e.Type {
	case event.RevealTickType:
		atomic.AddUint64(&s.revealTicks, 1)
	case event.WinnerCommittedType:
		atomic.AddUint64(&s.drawsCompleted, 1)
		if payload, ok := e.Payload.(event.WinnerCommitted); ok {
			s.lastWinner.Store(payload.Winner.Name)
		}
	case event.GroupsGeneratedType:
		atomic.AddUint64(&s.groupsGenerated, 1)
	case event.RosterImportedType:
		if payload, ok := e.Payload.(event.RosterImported); ok {
			atomic.AddUint64(&s.namesImported, uint64(payload.Added))
		}
	case event.RosterClearedType:
		atomic.AddUint64(&s.rostersCleared, 1)
	}
}

func (s *DrawStats) Snapshot() StatsSnapshot {
	winner, _ := s.lastWinner.Load().(string)
	return StatsSnapshot{
		NamesImported:   atomic.LoadUint64(&s.namesImported),
		DrawsCompleted:  atomic.LoadUint64(&s.drawsCompleted),
		RevealTicks:     atomic.LoadUint64(&s.revealTicks),
		GroupsGenerated: atomic.LoadUint64(&s.groupsGenerated),
		RostersCleared:  atomic.LoadUint64(&s.rostersCleared),
		LastWinner:      winner,
	}
}
