// Package runtime wires the roster, draw and grouping engines together
// and owns event propagation. It orchestrates the system without
// containing business logic or domain rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"draw-lab/contract"
	"draw-lab/domain"
	"draw-lab/domain/event"
	"draw-lab/runtime/workers"
	"draw-lab/services"
	"draw-lab/transfer"
)

// Controller is the single owner of the session state. Every mutation of
// the roster, the draw history and the generated groups flows through
// it; there are no ambient globals.
type Controller struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	roster         services.IRosterService
	draw           services.IDrawService
	grouping       services.IGroupingService
	events         chan event.Event
	telemetry      chan event.Event
	permanentSinks []contract.EventSink
	handlers       []event.Handler
	sinkTimeout    time.Duration
}

func NewController(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	roster services.IRosterService,
	draw services.IDrawService,
	grouping services.IGroupingService,
	events, telemetry chan event.Event,
	sinkTimeout time.Duration,
) *Controller {
	return &Controller{
		log:         log,
		supervisor:  supervisor,
		roster:      roster,
		draw:        draw,
		grouping:    grouping,
		events:      events,
		telemetry:   telemetry,
		sinkTimeout: sinkTimeout,
	}
}

// AddSinks registers permanent event consumers (console renderer, …).
// Must be called before Start.
func (c *Controller) AddSinks(sinks ...contract.EventSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.permanentSinks = append(c.permanentSinks, sinks...)
}

// AddHandlers registers telemetry handlers (stats, restart accounting).
// Must be called before Start.
func (c *Controller) AddHandlers(handlers ...event.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handlers...)
}

// Start registers the pipeline workers with the supervisor and blocks
// until the context is canceled and every worker has drained.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	fanout := workers.NewEventFanout(c.log, c.events, c.telemetry, c.sinkTimeout).
		Add(c.permanentSinks...)
	telemetry := workers.NewTelemetryWorker(c.log, c.telemetry, c.handlers)
	c.supervisor.Add(fanout, telemetry)
	c.mu.Unlock()

	c.log.Info("Starting controller and all supervised workers")
	c.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown: supervision is canceled, which
// also tears down any reveal still ticking.
func (c *Controller) Stop() {
	c.log.Info("Requesting controller shutdown")
	c.supervisor.Stop()
}

// --- Roster operations ---

func (c *Controller) ImportText(text string, dedupe bool) (int, error) {
	added, err := c.roster.AddFromLines(text, dedupe)
	c.reportImport(added, err)
	return added, err
}

func (c *Controller) ImportRows(rows [][]string, dedupe bool) (int, error) {
	added, err := c.roster.AddFromRows(rows, dedupe)
	c.reportImport(added, err)
	return added, err
}

// ImportFile sniffs the file content (plain text or CSV) and imports
// the names it holds.
func (c *Controller) ImportFile(path string, dedupe bool) (int, error) {
	names, err := transfer.ReadNamesFile(path)
	if err != nil {
		return 0, fmt.Errorf("import of %s failed: %w", path, err)
	}
	added, err := c.roster.AddNames(names, dedupe)
	c.reportImport(added, err)
	return added, err
}

func (c *Controller) Roster() ([]domain.Participant, error) {
	return c.roster.List()
}

// RosterCount reads the participant count without materializing the
// list; the stats view uses it alongside the event-derived counters.
func (c *Controller) RosterCount() (int, error) {
	return c.roster.Count()
}

func (c *Controller) Remove(id uuid.UUID) error {
	return c.roster.Remove(id)
}

func (c *Controller) Deduplicate() (int, error) {
	return c.roster.Deduplicate()
}

// ClearRoster wipes the participant list and cascades to the derived
// artifacts: a cleared roster leaves no history and no groups behind.
func (c *Controller) ClearRoster() error {
	if err := c.roster.Clear(); err != nil {
		return err
	}
	c.draw.Reset()
	c.grouping.Reset()
	c.publish(event.New(event.RosterClearedType, event.RosterCleared{}))
	return nil
}

// --- Draw operations ---

func (c *Controller) StartDraw(ctx context.Context) (<-chan struct{}, bool) {
	return c.draw.StartDraw(ctx)
}

func (c *Controller) SetAllowRepeat(allow bool) { c.draw.SetAllowRepeat(allow) }
func (c *Controller) AllowRepeat() bool         { return c.draw.AllowRepeat() }

func (c *Controller) History() []domain.Participant { return c.draw.History() }
func (c *Controller) ClearHistory()                 { c.draw.ClearHistory() }

// --- Grouping operations ---

func (c *Controller) GenerateGroups(size int) (domain.GroupSet, error) {
	return c.grouping.Generate(size)
}

func (c *Controller) Groups() domain.GroupSet { return c.grouping.Groups() }

// ExportGroups writes the last generated set as a CSV artifact.
func (c *Controller) ExportGroups(path string) error {
	return transfer.ExportGroupsFile(path, c.grouping.Groups())
}

func (c *Controller) reportImport(added int, err error) {
	if err != nil || added == 0 {
		return
	}
	c.publish(event.New(event.RosterImportedType, event.RosterImported{Added: added}))
}

func (c *Controller) publish(evt event.Event) {
	select {
	case c.events <- evt:
	default:
		c.log.Debug("Event channel full, dropping", "type", evt.Type)
	}
}
