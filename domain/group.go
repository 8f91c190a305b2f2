package domain

// Group is an ordered subset of the roster produced by the grouping engine.
type Group []Participant

// GroupSet is the result of one grouping run. Indices are 1-based in
// user-facing output; generation order is preserved.
type GroupSet []Group

// Total counts participants across all groups.
func (gs GroupSet) Total() int {
	total := 0
	for _, g := range gs {
		total += len(g)
	}
	return total
}
