package domain

import "github.com/google/uuid"

// Eligible computes the subset of the roster allowed to win a draw.
// With allowRepeat the whole roster is eligible; otherwise every
// participant whose ID appears anywhere in the history is excluded.
// Order of the roster is preserved.
func Eligible(roster, history []Participant, allowRepeat bool) []Participant {
	if allowRepeat || len(history) == 0 {
		return roster
	}
	won := make(map[uuid.UUID]struct{}, len(history))
	for _, p := range history {
		won[p.ID] = struct{}{}
	}
	eligible := make([]Participant, 0, len(roster))
	for _, p := range roster {
		if _, ok := won[p.ID]; !ok {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
