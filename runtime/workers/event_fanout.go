package workers

import (
	"context"
	"log/slog"
	"time"

	"draw-lab/contract"
	"draw-lab/domain/event"
)

// EventFanout broadcasts engine events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for rendering and observability (console, stats),
// not for core draw logic.
type EventFanout struct {
	log         *slog.Logger
	events      chan event.Event
	telemetry   chan event.Event
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events, telemetry chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, events: events, telemetry: telemetry, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Telemetry event lost, channel full")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// fanout One sink for each event, bounded by the sink timeout so a slow
// consumer can never stall the reveal animation.
func (w *EventFanout) fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Error("Sink rejected event", "type", evt.Type, "error", err)
		}
		cancel()
	}
}
