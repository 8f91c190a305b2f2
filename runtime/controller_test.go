package runtime

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"draw-lab/domain"
	"draw-lab/domain/event"
	"draw-lab/errors"
	"draw-lab/mocks"
	"draw-lab/runtime/workers"
	"draw-lab/services"
)

func setupController(t *testing.T) (*Controller, *mocks.MockIParticipantRepository, chan event.Event) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	log := slog.Default()
	events := make(chan event.Event, 64)
	telemetry := make(chan event.Event, 64)
	supervisor := workers.NewSupervisor(log, telemetry, 10*time.Millisecond)

	roster := services.NewRosterService(log, repoMock)
	draw := services.NewDrawService(log, repoMock, supervisor, events,
		rand.New(rand.NewPCG(1, 2)), 10*time.Millisecond, time.Millisecond)
	grouping := services.NewGroupingService(log, repoMock, events, rand.New(rand.NewPCG(3, 4)))

	controller := NewController(log, supervisor, roster, draw, grouping, events, telemetry, time.Second)
	return controller, repoMock, events
}

func TestController_ImportText_PublishesRosterImported(t *testing.T) {
	req := require.New(t)
	controller, repoMock, events := setupController(t)

	repoMock.EXPECT().Append(gomock.Any()).Return(nil)

	added, err := controller.ImportText("Alice\nBob", false)

	req.NoError(err)
	req.Equal(2, added)

	evt := <-events
	req.Equal(event.RosterImportedType, evt.Type)
	payload, ok := evt.Payload.(event.RosterImported)
	req.True(ok)
	req.Equal(2, payload.Added)
}

func TestController_ImportText_EmptyInputStaysSilent(t *testing.T) {
	req := require.New(t)
	controller, _, events := setupController(t)

	added, err := controller.ImportText("   \n\n  ", false)

	req.NoError(err)
	req.Zero(added)
	req.Empty(events)
}

func TestController_ClearRoster_CascadesToHistoryAndGroups(t *testing.T) {
	req := require.New(t)
	controller, repoMock, events := setupController(t)

	roster := []domain.Participant{
		domain.NewParticipant("Alice"),
		domain.NewParticipant("Bob"),
	}
	repoMock.EXPECT().List().Return(roster, nil).AnyTimes()

	// Build up derived state: one winner and one group set.
	done, started := controller.StartDraw(context.Background())
	req.True(started)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("draw did not complete in time")
	}
	req.Len(controller.History(), 1)

	_, err := controller.GenerateGroups(1)
	req.NoError(err)
	req.Len(controller.Groups(), 2)

	// When the roster is cleared
	repoMock.EXPECT().Clear().Return(nil)
	req.NoError(controller.ClearRoster())

	// Then nothing derived survives
	req.Empty(controller.History())
	req.Nil(controller.Groups())

	var types []event.Type
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	req.Contains(types, event.RosterClearedType)
}

func TestController_RosterCount(t *testing.T) {
	req := require.New(t)
	controller, repoMock, _ := setupController(t)

	repoMock.EXPECT().Count().Return(4, nil)

	count, err := controller.RosterCount()
	req.NoError(err)
	req.Equal(4, count)
}

func TestController_GenerateGroups_InvalidSize(t *testing.T) {
	req := require.New(t)
	controller, _, _ := setupController(t)

	set, err := controller.GenerateGroups(0)

	req.ErrorIs(err, errors.ErrInvalidGroupSize)
	req.Nil(set)
}

func TestController_ImportFile_MissingFile(t *testing.T) {
	req := require.New(t)
	controller, _, _ := setupController(t)

	added, err := controller.ImportFile("does-not-exist.txt", true)

	req.Error(err)
	req.Zero(added)
}

func TestController_RepeatPolicyRoundTrip(t *testing.T) {
	req := require.New(t)
	controller, _, _ := setupController(t)

	req.False(controller.AllowRepeat())
	controller.SetAllowRepeat(true)
	req.True(controller.AllowRepeat())
}
