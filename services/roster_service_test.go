package services

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"draw-lab/domain"
	"draw-lab/mocks"
)

func TestRosterService_Count_DelegatesToRepository(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	repoMock.EXPECT().Count().Return(3, nil)

	service := NewRosterService(slog.Default(), repoMock)

	count, err := service.Count()
	req.NoError(err)
	req.Equal(3, count)
}

func TestRosterService_AddNames_TrimsAndSkipsBlanks(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	var appended []domain.Participant
	repoMock.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(batch []domain.Participant) error {
			appended = batch
			return nil
		})

	service := NewRosterService(slog.Default(), repoMock)

	added, err := service.AddNames([]string{"  Alice  ", "", "   ", "Bob"}, false)

	req.NoError(err)
	req.Equal(2, added)
	req.Equal([]string{"Alice", "Bob"}, domain.Names(appended))
}

func TestRosterService_AddNames_DedupeAgainstRosterAndBatch(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	// "Alice" is already on the roster.
	repoMock.EXPECT().
		List().
		Return([]domain.Participant{domain.NewParticipant("Alice")}, nil)

	var appended []domain.Participant
	repoMock.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(batch []domain.Participant) error {
			appended = batch
			return nil
		})

	service := NewRosterService(slog.Default(), repoMock)

	// "Alice" clashes with the roster, the second "Bob" with the batch.
	added, err := service.AddNames([]string{"Alice", "Bob", "Bob", "Carol"}, true)

	req.NoError(err)
	req.Equal(2, added)
	req.Equal([]string{"Bob", "Carol"}, domain.Names(appended))
}

func TestRosterService_AddNames_CaseSensitiveDedupe(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	repoMock.EXPECT().List().Return(nil, nil)

	var appended []domain.Participant
	repoMock.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(batch []domain.Participant) error {
			appended = batch
			return nil
		})

	service := NewRosterService(slog.Default(), repoMock)

	added, err := service.AddNames([]string{"alice", "Alice"}, true)

	req.NoError(err)
	req.Equal(2, added)
	req.Equal([]string{"alice", "Alice"}, domain.Names(appended))
}

func TestRosterService_AddNames_EmptyBatchIsNoOp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	service := NewRosterService(slog.Default(), repoMock)

	added, err := service.AddNames(nil, true)

	req.NoError(err)
	req.Zero(added)
}

func TestRosterService_AddFromLines(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	var appended []domain.Participant
	repoMock.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(batch []domain.Participant) error {
			appended = batch
			return nil
		})

	service := NewRosterService(slog.Default(), repoMock)

	added, err := service.AddFromLines("Alice\r\nBob\n\n  Carol  \n", false)

	req.NoError(err)
	req.Equal(3, added)
	req.Equal([]string{"Alice", "Bob", "Carol"}, domain.Names(appended))
}

func TestRosterService_Deduplicate_KeepsFirstOccurrence(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	firstAlice := domain.NewParticipant("Alice")
	bob := domain.NewParticipant("Bob")
	secondAlice := domain.NewParticipant("Alice")

	repoMock.EXPECT().
		List().
		Return([]domain.Participant{firstAlice, bob, secondAlice}, nil)

	// Only the later duplicate goes away.
	repoMock.EXPECT().Remove(secondAlice.ID).Return(true, nil)

	service := NewRosterService(slog.Default(), repoMock)

	removed, err := service.Deduplicate()

	req.NoError(err)
	req.Equal(1, removed)
}

func TestRosterService_Deduplicate_NoDuplicates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	repoMock.EXPECT().
		List().
		Return([]domain.Participant{domain.NewParticipant("Alice"), domain.NewParticipant("Bob")}, nil)

	service := NewRosterService(slog.Default(), repoMock)

	removed, err := service.Deduplicate()

	req.NoError(err)
	req.Zero(removed)
}

func TestRosterService_Remove_UnknownIDIsNoOp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repoMock := mocks.NewMockIParticipantRepository(ctrl)

	unknown := uuid.New()
	repoMock.EXPECT().Remove(unknown).Return(false, nil)

	service := NewRosterService(slog.Default(), repoMock)

	req.NoError(service.Remove(unknown))
}
