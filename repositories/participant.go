//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"draw-lab/domain"
)

// ParticipantPrefix namespaces roster entries inside the shared BadgerDB.
const ParticipantPrefix = "participant:"

type IParticipantRepository interface {
	Append(participants []domain.Participant) error
	List() ([]domain.Participant, error)
	Remove(id uuid.UUID) (bool, error)
	Clear() error
	Count() (int, error)
}

type ParticipantRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq *badger.Sequence
}

// diskParticipant is the stored shape of a roster entry.
type diskParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewParticipantRepository reserves a monotonic sequence used to build
// insertion-ordered keys. Callers must Close the repository to release
// the unused part of the sequence lease.
func NewParticipantRepository(db *badger.DB, log *slog.Logger) (*ParticipantRepository, error) {
	seq, err := db.GetSequence([]byte("seq:participant"), 64)
	if err != nil {
		return nil, fmt.Errorf("participant sequence init failed: %w", err)
	}
	return &ParticipantRepository{db: db, log: log, seq: seq}, nil
}

func (r *ParticipantRepository) Close() error {
	return r.seq.Release()
}

// Append persists participants at the end of the roster.
// The key is formatted as "participant:{seq_padded}:{uuid}" to:
//  1. Preserve insertion order using 12-digit zero padding (lexicographical order).
//  2. Keep the UUID visible in the key for debugging and prefix lookups.
func (r *ParticipantRepository) Append(participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, p := range participants {
			n, err := r.seq.Next()
			if err != nil {
				return err
			}
			key := fmt.Sprintf("%s%012d:%s", ParticipantPrefix, n, p.ID)
			bytes, err := json.Marshal(diskParticipant{ID: p.ID.String(), Name: p.Name})
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the full roster in insertion order. Thanks to the padded
// sequence in the key, a plain forward prefix scan is already sorted.
func (r *ParticipantRepository) List() ([]domain.Participant, error) {
	var participants []domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(ParticipantPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var dp diskParticipant
				if err := json.Unmarshal(value, &dp); err != nil {
					return err
				}
				p, err := toParticipant(dp)
				if err != nil {
					return err
				}
				participants = append(participants, p)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return participants, err
}

// Remove deletes the entry matching the given ID. Absent IDs are a no-op,
// reported through the boolean so callers can stay silent about them.
func (r *ParticipantRepository) Remove(id uuid.UUID) (bool, error) {
	suffix := ":" + id.String()
	removed := false
	err := r.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(ParticipantPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			if strings.HasSuffix(string(key), suffix) {
				removed = true
				return txn.Delete(key)
			}
		}
		return nil
	})
	return removed, err
}

// Clear drops every roster entry. The sequence keeps advancing, which is
// fine: keys only need to be monotonic, not dense.
func (r *ParticipantRepository) Clear() error {
	return r.db.DropPrefix([]byte(ParticipantPrefix))
}

func (r *ParticipantRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(ParticipantPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func toParticipant(dp diskParticipant) (domain.Participant, error) {
	parsedID, err := uuid.Parse(dp.ID)
	if err != nil {
		return domain.Participant{}, err
	}
	return domain.Participant{ID: parsedID, Name: dp.Name}, nil
}
