// Package event defines the notifications produced by the draw and
// grouping engines, fanned out to in-process sinks (console, stats).
package event

import (
	"time"

	"draw-lab/domain"
)

type Type string

const (
	RevealTickType          Type = "REVEAL_TICK"
	WinnerCommittedType     Type = "WINNER_COMMITTED"
	GroupsGeneratedType     Type = "GROUPS_GENERATED"
	RosterImportedType      Type = "ROSTER_IMPORTED"
	RosterClearedType       Type = "ROSTER_CLEARED"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
)

type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// New stamps a payload with its type and creation time.
func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

// RevealTick is one flicker frame of the reveal phase. Sample is an
// independent uniform pick from the eligible snapshot, not the winner.
type RevealTick struct {
	Sample domain.Participant
	Tick   int
	Of     int
}

// WinnerCommitted is emitted once per completed draw.
type WinnerCommitted struct {
	Winner        domain.Participant
	EligibleCount int
}

type GroupsGenerated struct {
	GroupCount int
	GroupSize  int
	Total      int
}

type RosterImported struct {
	Added int
}

type RosterCleared struct{}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}
