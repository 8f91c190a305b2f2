//go:generate go run go.uber.org/mock/mockgen -source=grouping_service.go -destination=../mocks/mock_grouping_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/samber/lo"

	"draw-lab/domain"
	"draw-lab/domain/event"
	"draw-lab/errors"
	"draw-lab/repositories"
)

type IGroupingService interface {
	Generate(groupSize int) (domain.GroupSet, error)
	Groups() domain.GroupSet
	Reset()
}

// GroupingService partitions the full roster into random fixed-size
// groups. Grouping ignores the draw engine entirely: history and repeat
// policy play no role here.
type GroupingService struct {
	mu     sync.Mutex
	log    *slog.Logger
	repo   repositories.IParticipantRepository
	events chan<- event.Event
	rng    *rand.Rand
	groups domain.GroupSet
}

func NewGroupingService(
	log *slog.Logger,
	repo repositories.IParticipantRepository,
	events chan<- event.Event,
	rng *rand.Rand,
) *GroupingService {
	return &GroupingService{log: log, repo: repo, events: events, rng: rng}
}

// Generate shuffles a copy of the roster with Fisher-Yates (rand.Shuffle,
// every permutation equally likely) and chunks it into consecutive
// groups of groupSize, the last possibly shorter. A non-positive size is
// the one reportable input error; an empty roster is a silent no-op.
// The result replaces any previously generated set.
func (s *GroupingService) Generate(groupSize int) (domain.GroupSet, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrInvalidGroupSize, groupSize)
	}

	roster, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("roster lookup failed: %w", err)
	}
	if len(roster) == 0 {
		s.log.Debug("Empty roster, ignoring grouping")
		return nil, nil
	}

	shuffled := make([]domain.Participant, len(roster))
	copy(shuffled, roster)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	set := domain.GroupSet(lo.Map(lo.Chunk(shuffled, groupSize), func(chunk []domain.Participant, _ int) domain.Group {
		return domain.Group(chunk)
	}))
	s.groups = set
	s.mu.Unlock()

	s.log.Info("Groups generated", "groups", len(set), "size", groupSize, "participants", len(shuffled))
	s.publish(event.New(event.GroupsGeneratedType, event.GroupsGenerated{
		GroupCount: len(set),
		GroupSize:  groupSize,
		Total:      len(shuffled),
	}))
	return set, nil
}

// Groups returns the last generated set, nil when none exists.
func (s *GroupingService) Groups() domain.GroupSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups
}

// Reset forgets the current set; used when the roster is cleared.
func (s *GroupingService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = nil
}

func (s *GroupingService) publish(evt event.Event) {
	select {
	case s.events <- evt:
	default:
		s.log.Debug("Event channel full, dropping", "type", evt.Type)
	}
}
