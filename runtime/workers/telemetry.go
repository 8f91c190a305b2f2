package workers

import (
	"context"
	"log/slog"

	"draw-lab/domain/event"
)

// TelemetryWorker dispatches the telemetry copy of the event stream to
// its handlers (stats counters, restart accounting). Handlers are
// synchronous and cheap; ordering follows channel order.
type TelemetryWorker struct {
	log       *slog.Logger
	telemetry chan event.Event
	handlers  []event.Handler
}

func NewTelemetryWorker(log *slog.Logger, telemetry chan event.Event, handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{log: log, telemetry: telemetry, handlers: handlers}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry dispatch")
			return nil
		case evt := <-w.telemetry:
			for _, h := range w.handlers {
				h.Handle(evt)
			}
		}
	}
}
