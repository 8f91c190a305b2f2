package observability

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"draw-lab/domain"
	"draw-lab/domain/event"
)

func TestDrawStats_Handle(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := NewDrawStats(logger)

	stats.Handle(event.New(event.RosterImportedType, event.RosterImported{Added: 3}))
	stats.Handle(event.New(event.RosterImportedType, event.RosterImported{Added: 2}))
	for i := 0; i < 40; i++ {
		stats.Handle(event.New(event.RevealTickType, event.RevealTick{Tick: i + 1, Of: 40}))
	}
	stats.Handle(event.New(event.WinnerCommittedType, event.WinnerCommitted{
		Winner: domain.NewParticipant("Alice"), EligibleCount: 5,
	}))
	stats.Handle(event.New(event.GroupsGeneratedType, event.GroupsGenerated{GroupCount: 2, GroupSize: 3, Total: 5}))
	stats.Handle(event.New(event.RosterClearedType, event.RosterCleared{}))

	snapshot := stats.Snapshot()
	req.Equal(uint64(5), snapshot.NamesImported)
	req.Equal(uint64(1), snapshot.DrawsCompleted)
	req.Equal(uint64(40), snapshot.RevealTicks)
	req.Equal(uint64(1), snapshot.GroupsGenerated)
	req.Equal(uint64(1), snapshot.RostersCleared)
	req.Equal("Alice", snapshot.LastWinner)
}

func TestDrawStats_ConcurrentHandlers(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := NewDrawStats(logger)

	numWorkers := 10
	eventsPerWorker := 100
	done := make(chan bool, numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			for i := 0; i < eventsPerWorker; i++ {
				stats.Handle(event.New(event.RevealTickType, event.RevealTick{}))
			}
			done <- true
		}()
	}
	for w := 0; w < numWorkers; w++ {
		<-done
	}

	req.Equal(uint64(numWorkers*eventsPerWorker), stats.Snapshot().RevealTicks)
}
