package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"draw-lab/domain"
)

func setupRepository(t *testing.T) *ParticipantRepository {
	t.Helper()
	req := require.New(t)

	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(options)
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo, err := NewParticipantRepository(db, log)
	req.NoError(err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestParticipantRepository_AppendPreservesInsertionOrder(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	first := []domain.Participant{
		domain.NewParticipant("Alice"),
		domain.NewParticipant("Bob"),
	}
	second := []domain.Participant{
		domain.NewParticipant("Charlie"),
	}

	req.NoError(repo.Append(first))
	req.NoError(repo.Append(second))

	listed, err := repo.List()
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob", "Charlie"}, domain.Names(listed))

	count, err := repo.Count()
	req.NoError(err)
	req.Equal(3, count)
}

func TestParticipantRepository_AppendEmptyBatchIsNoOp(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	req.NoError(repo.Append(nil))

	count, err := repo.Count()
	req.NoError(err)
	req.Zero(count)
}

func TestParticipantRepository_RemoveIsIdempotent(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	bob := domain.NewParticipant("Bob")
	req.NoError(repo.Append([]domain.Participant{
		domain.NewParticipant("Alice"),
		bob,
		domain.NewParticipant("Charlie"),
	}))

	removed, err := repo.Remove(bob.ID)
	req.NoError(err)
	req.True(removed)

	// Second removal of the same ID must be a silent no-op.
	removed, err = repo.Remove(bob.ID)
	req.NoError(err)
	req.False(removed)

	listed, err := repo.List()
	req.NoError(err)
	req.Equal([]string{"Alice", "Charlie"}, domain.Names(listed))
}

func TestParticipantRepository_RemoveUnknownIDIsNoOp(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	req.NoError(repo.Append([]domain.Participant{domain.NewParticipant("Alice")}))

	removed, err := repo.Remove(uuid.New())
	req.NoError(err)
	req.False(removed)

	count, err := repo.Count()
	req.NoError(err)
	req.Equal(1, count)
}

func TestParticipantRepository_ClearThenAppendKeepsOrdering(t *testing.T) {
	req := require.New(t)
	repo := setupRepository(t)

	req.NoError(repo.Append([]domain.Participant{
		domain.NewParticipant("Alice"),
		domain.NewParticipant("Bob"),
	}))
	req.NoError(repo.Clear())

	count, err := repo.Count()
	req.NoError(err)
	req.Zero(count)

	// The sequence keeps advancing after a clear; new entries must still
	// come back in insertion order.
	req.NoError(repo.Append([]domain.Participant{
		domain.NewParticipant("Diana"),
		domain.NewParticipant("Eve"),
	}))

	listed, err := repo.List()
	req.NoError(err)
	req.Equal([]string{"Diana", "Eve"}, domain.Names(listed))
}
