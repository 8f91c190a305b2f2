package workers

import (
	"context"
	"log/slog"
	"time"
)

// RevealWorker drives the timed reveal phase of a single draw: a fixed
// number of ticks at a fixed interval, then one final commit. It owns no
// draw state; sampling and committing happen in the callbacks provided
// by the draw engine. The ticker is always disposed, whether the reveal
// runs to completion or the context is canceled mid-flight.
type RevealWorker struct {
	log      *slog.Logger
	interval time.Duration
	ticks    int
	onTick   func(tick, of int)
	onFinish func(aborted bool)
}

func NewRevealWorker(
	log *slog.Logger,
	interval time.Duration,
	ticks int,
	onTick func(tick, of int),
	onFinish func(aborted bool),
) *RevealWorker {
	return &RevealWorker{
		log:      log,
		interval: interval,
		ticks:    ticks,
		onTick:   onTick,
		onFinish: onFinish,
	}
}

// Run executes the reveal loop. There is no cancellation path other than
// engine teardown: the reveal's duration is its own deadline.
func (w *RevealWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for tick := 1; tick <= w.ticks; tick++ {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, aborting reveal", "tick", tick, "of", w.ticks)
			w.onFinish(true)
			return nil
		case <-ticker.C:
			w.onTick(tick, w.ticks)
		}
	}

	w.onFinish(false)
	return nil
}
