package test

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"draw-lab/domain/event"
	"draw-lab/mocks"
	"draw-lab/repositories"
	"draw-lab/runtime"
	"draw-lab/runtime/workers"
	"draw-lab/services"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	// 1. Create channel to wait for a signal at the end of process
	done := make(chan struct{})
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	events := make(chan event.Event, 64)
	telemetryChan := make(chan event.Event, 64)
	supervisor := workers.NewSupervisor(log, telemetryChan, 200*time.Millisecond)

	repo, err := repositories.NewParticipantRepository(db, log)
	req.NoError(err)

	rosterService := services.NewRosterService(log, repo)
	drawService := services.NewDrawService(log, repo, supervisor, events,
		rand.New(rand.NewPCG(1, 2)), 20*time.Millisecond, 2*time.Millisecond)
	groupingService := services.NewGroupingService(log, repo, events,
		rand.New(rand.NewPCG(3, 4)))

	controller := runtime.NewController(log, supervisor,
		rosterService, drawService, groupingService,
		events, telemetryChan, 3*time.Second)

	ctrl := gomock.NewController(t)
	mockSink := mocks.NewMockEventSink(ctrl)
	mockSink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, evt event.Event) {
			if evt.Type == event.WinnerCommittedType {
				close(done) // Signaling that the winner traversed the pipeline
			}
		}).
		Return(nil).
		AnyTimes()
	controller.AddSinks(mockSink)

	go func() {
		err := controller.Start(ctx)
		req.NoError(err)
	}()

	// Clean everything at the end of the test
	t.Cleanup(func() {
		controller.Stop()
		_ = repo.Close()
		db.Close()
	})

	// When a roster is imported and a draw is run
	added, err := controller.ImportText("Alice\nBob\nCarol", true)
	req.NoError(err)
	req.Equal(3, added)

	_, started := controller.StartDraw(ctx)
	req.True(started)

	// And wait time for channels & goroutines
	select {
	case <-done:
		// Then the committed winner has reached the sink
	case <-time.After(2 * time.Second):

		req.Fail("Timeout: winner has never reached the sink")
	}
}
