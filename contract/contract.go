//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"draw-lab/domain"
	"draw-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives fanned-out events. Sinks are best-effort consumers:
// a failing sink never blocks the engines.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IController is the single owner of the application state: roster,
// draw history and generated groups all live behind it, never in globals.
type IController interface {
	ImportText(text string, dedupe bool) (int, error)
	ImportRows(rows [][]string, dedupe bool) (int, error)
	ImportFile(path string, dedupe bool) (int, error)
	Roster() ([]domain.Participant, error)
	RosterCount() (int, error)
	Remove(id uuid.UUID) error
	Deduplicate() (int, error)
	ClearRoster() error

	StartDraw(ctx context.Context) (<-chan struct{}, bool)
	SetAllowRepeat(allow bool)
	AllowRepeat() bool
	History() []domain.Participant
	ClearHistory()

	GenerateGroups(size int) (domain.GroupSet, error)
	Groups() domain.GroupSet
	ExportGroups(path string) error

	Start(ctx context.Context) error
	Stop()
}
