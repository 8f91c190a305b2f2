// Package domain contains core concepts of the draw system.
// This file defines Participant entities and related invariants.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Participant is an entry of the roster.
// Identity is the ID; the Name is display-only and not required
// to be unique unless deduplication is requested.
type Participant struct {
	ID   uuid.UUID
	Name string
}

// NewParticipant assigns a fresh identity to a trimmed display name.
// The caller is responsible for discarding empty names beforehand.
func NewParticipant(name string) Participant {
	return Participant{ID: uuid.New(), Name: strings.TrimSpace(name)}
}

// Names projects a participant sequence onto its display names,
// preserving order.
func Names(participants []Participant) []string {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return names
}
