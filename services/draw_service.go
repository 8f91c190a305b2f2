//go:generate go run go.uber.org/mock/mockgen -source=draw_service.go -destination=../mocks/mock_draw_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/samber/lo"

	"draw-lab/contract"
	"draw-lab/domain"
	"draw-lab/domain/event"
	"draw-lab/repositories"
	"draw-lab/runtime/workers"
)

type IDrawService interface {
	StartDraw(ctx context.Context) (<-chan struct{}, bool)
	InProgress() bool
	Current() *domain.Participant
	History() []domain.Participant
	ClearHistory()
	Reset()
	SetAllowRepeat(allow bool)
	AllowRepeat() bool
	Eligible() ([]domain.Participant, error)
}

// DrawService is the draw state machine: Idle -> Drawing -> Idle.
// A draw snapshots its eligible set once, runs a timed reveal through a
// supervised RevealWorker, and commits an independent final sample as
// the winner. Only one reveal can be active at a time.
type DrawService struct {
	mu           sync.Mutex
	log          *slog.Logger
	repo         repositories.IParticipantRepository
	supervisor   contract.ISupervisor
	events       chan<- event.Event
	rng          *rand.Rand
	tickInterval time.Duration
	ticks        int
	allowRepeat  bool
	inProgress   bool
	history      []domain.Participant
	current      *domain.Participant
}

func NewDrawService(
	log *slog.Logger,
	repo repositories.IParticipantRepository,
	supervisor contract.ISupervisor,
	events chan<- event.Event,
	rng *rand.Rand,
	revealDuration, tickInterval time.Duration,
) *DrawService {
	ticks := int(revealDuration / tickInterval)
	if ticks < 1 {
		ticks = 1
	}
	return &DrawService{
		log:          log,
		repo:         repo,
		supervisor:   supervisor,
		events:       events,
		rng:          rng,
		tickInterval: tickInterval,
		ticks:        ticks,
	}
}

// StartDraw begins the reveal phase if nothing is eligible-empty or
// already in flight; otherwise it is a silent no-op. The returned
// channel closes once the winner is committed (or the reveal is torn
// down with the context), letting callers wait without polling.
func (s *DrawService) StartDraw(ctx context.Context) (<-chan struct{}, bool) {
	s.mu.Lock()
	if s.inProgress {
		s.mu.Unlock()
		s.log.Debug("Draw already in progress, ignoring")
		return nil, false
	}

	eligible, err := s.eligibleLocked()
	if err != nil {
		s.mu.Unlock()
		s.log.Error("Eligible set lookup failed", "error", err)
		return nil, false
	}
	if len(eligible) == 0 {
		s.mu.Unlock()
		s.log.Debug("No eligible participant, ignoring draw")
		return nil, false
	}

	// The snapshot is computed once; roster mutations during the reveal
	// do not change the running draw.
	snapshot := make([]domain.Participant, len(eligible))
	copy(snapshot, eligible)
	s.inProgress = true
	s.mu.Unlock()

	done := make(chan struct{})
	reveal := workers.NewRevealWorker(s.log, s.tickInterval, s.ticks,
		func(tick, of int) {
			s.flicker(snapshot, tick, of)
		},
		func(aborted bool) {
			s.commit(snapshot, aborted)
			close(done)
		},
	)
	s.supervisor.Start(ctx, reveal)
	return done, true
}

// flicker publishes one transient sample of the reveal animation.
func (s *DrawService) flicker(snapshot []domain.Participant, tick, of int) {
	s.mu.Lock()
	sample := snapshot[s.rng.IntN(len(snapshot))]
	s.current = &sample
	s.mu.Unlock()

	s.publish(event.New(event.RevealTickType, event.RevealTick{Sample: sample, Tick: tick, Of: of}))
}

// commit draws the final independent sample and records it at the head
// of the history. The last flicker is not guaranteed to match the
// winner. An aborted reveal (engine teardown) only releases the
// in-progress flag.
func (s *DrawService) commit(snapshot []domain.Participant, aborted bool) {
	s.mu.Lock()
	if aborted {
		s.inProgress = false
		s.mu.Unlock()
		return
	}

	winner := snapshot[s.rng.IntN(len(snapshot))]
	s.history = append([]domain.Participant{winner}, s.history...)
	s.current = &winner
	s.inProgress = false
	s.mu.Unlock()

	s.log.Info("Winner committed", "name", winner.Name, "id", winner.ID)
	s.publish(event.New(event.WinnerCommittedType, event.WinnerCommitted{
		Winner:        winner,
		EligibleCount: len(snapshot),
	}))
}

func (s *DrawService) publish(evt event.Event) {
	select {
	case s.events <- evt:
	default:
		s.log.Debug("Event channel full, dropping", "type", evt.Type)
	}
}

// Eligible returns the participants allowed to win the next draw under
// the current repeat policy.
func (s *DrawService) Eligible() ([]domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligibleLocked()
}

func (s *DrawService) eligibleLocked() ([]domain.Participant, error) {
	roster, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return domain.Eligible(roster, s.history, s.allowRepeat), nil
}

func (s *DrawService) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inProgress
}

// Current is the participant on display: the transient flicker sample
// while drawing, the committed winner once idle, nil before any draw.
func (s *DrawService) Current() *domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return lo.ToPtr(*s.current)
}

// History returns past winners, most recent first. Entries survive
// roster removals: past winners remain facts of the session.
func (s *DrawService) History() []domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Participant, len(s.history))
	copy(out, s.history)
	return out
}

func (s *DrawService) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Reset wipes history and display; used when the roster is cleared.
func (s *DrawService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.current = nil
}

func (s *DrawService) SetAllowRepeat(allow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowRepeat = allow
}

func (s *DrawService) AllowRepeat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowRepeat
}
