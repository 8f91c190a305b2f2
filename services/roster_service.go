//go:generate go run go.uber.org/mock/mockgen -source=roster_service.go -destination=../mocks/mock_roster_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"draw-lab/domain"
	"draw-lab/repositories"
	"draw-lab/transfer"
)

type IRosterService interface {
	AddNames(names []string, dedupe bool) (int, error)
	AddFromLines(text string, dedupe bool) (int, error)
	AddFromRows(rows [][]string, dedupe bool) (int, error)
	Deduplicate() (int, error)
	Remove(id uuid.UUID) error
	Clear() error
	List() ([]domain.Participant, error)
	Count() (int, error)
}

// RosterService owns every mutation of the participant list. All its
// edge cases are silent no-ops: empty input, unknown IDs and blank
// names are skipped, never errors.
type RosterService struct {
	log  *slog.Logger
	repo repositories.IParticipantRepository
}

func NewRosterService(log *slog.Logger, repo repositories.IParticipantRepository) *RosterService {
	return &RosterService{log: log, repo: repo}
}

// AddNames appends trimmed, non-empty names in input order, each with a
// fresh identity. With dedupe, a name already present in the roster or
// earlier in the same batch is silently skipped (case-sensitive exact
// match).
func (s *RosterService) AddNames(names []string, dedupe bool) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	seen := make(map[string]struct{})
	if dedupe {
		existing, err := s.repo.List()
		if err != nil {
			return 0, fmt.Errorf("roster lookup failed: %w", err)
		}
		for _, p := range existing {
			seen[p.Name] = struct{}{}
		}
	}

	var batch []domain.Participant
	for _, name := range names {
		p := domain.NewParticipant(name)
		if p.Name == "" {
			continue
		}
		if dedupe {
			if _, dup := seen[p.Name]; dup {
				s.log.Debug("Skipping duplicate name", "name", p.Name)
				continue
			}
			seen[p.Name] = struct{}{}
		}
		batch = append(batch, p)
	}

	if err := s.repo.Append(batch); err != nil {
		return 0, fmt.Errorf("roster append failed: %w", err)
	}
	return len(batch), nil
}

// AddFromLines imports raw text, one name per line.
func (s *RosterService) AddFromLines(text string, dedupe bool) (int, error) {
	return s.AddNames(transfer.ParseLines(text), dedupe)
}

// AddFromRows imports tabular rows flattened into a name sequence.
func (s *RosterService) AddFromRows(rows [][]string, dedupe bool) (int, error) {
	return s.AddNames(transfer.FlattenRows(rows), dedupe)
}

// Deduplicate removes every participant whose name duplicates an earlier
// entry. The first occurrence of each name wins and keeps its position.
func (s *RosterService) Deduplicate() (int, error) {
	participants, err := s.repo.List()
	if err != nil {
		return 0, fmt.Errorf("roster lookup failed: %w", err)
	}

	seen := make(map[string]struct{}, len(participants))
	removed := 0
	for _, p := range participants {
		if _, dup := seen[p.Name]; !dup {
			seen[p.Name] = struct{}{}
			continue
		}
		if _, err := s.repo.Remove(p.ID); err != nil {
			return removed, fmt.Errorf("duplicate removal failed: %w", err)
		}
		removed++
	}

	if removed > 0 {
		s.log.Info("Roster deduplicated", "removed", removed)
	}
	return removed, nil
}

// Remove drops the matching participant. Unknown IDs are a no-op.
func (s *RosterService) Remove(id uuid.UUID) error {
	removed, err := s.repo.Remove(id)
	if err != nil {
		return fmt.Errorf("roster removal failed: %w", err)
	}
	if !removed {
		s.log.Debug("Remove ignored, participant not found", "id", id)
	}
	return nil
}

func (s *RosterService) Clear() error {
	return s.repo.Clear()
}

func (s *RosterService) List() ([]domain.Participant, error) {
	return s.repo.List()
}

func (s *RosterService) Count() (int, error) {
	return s.repo.Count()
}
