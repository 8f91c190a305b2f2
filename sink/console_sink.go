// Package sink holds the in-process consumers of the event stream.
package sink

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gookit/color"

	"draw-lab/domain/event"
	"draw-lab/errors"
)

// ConsoleSink renders the reveal animation on the terminal: every tick
// overwrites the same line with the sampled name, and the committed
// winner ends the line. Events it does not render are ignored.
type ConsoleSink struct {
	log *slog.Logger
	out io.Writer
}

func NewConsoleSink(log *slog.Logger, out io.Writer) *ConsoleSink {
	return &ConsoleSink{log: log, out: out}
}

func (s *ConsoleSink) Consume(_ context.Context, e event.Event) error {
	switch e.Type {
	case event.RevealTickType:
		payload, ok := e.Payload.(event.RevealTick)
		if !ok {
			return errors.ErrInvalidPayload
		}
		_, err := fmt.Fprintf(s.out, "\r  %s", color.Cyan.Sprintf("%-32s", payload.Sample.Name))
		return err

	case event.WinnerCommittedType:
		payload, ok := e.Payload.(event.WinnerCommitted)
		if !ok {
			return errors.ErrInvalidPayload
		}
		_, err := fmt.Fprintf(s.out, "\r  %s %s\n",
			color.New(color.FgGreen, color.Bold).Render("Winner:"),
			color.Bold.Render(fmt.Sprintf("%-32s", payload.Winner.Name)))
		return err

	case event.GroupsGeneratedType:
		payload, ok := e.Payload.(event.GroupsGenerated)
		if !ok {
			return errors.ErrInvalidPayload
		}
		_, err := fmt.Fprintln(s.out, color.Gray.Sprintf("  %d groups of up to %d (%d participants)",
			payload.GroupCount, payload.GroupSize, payload.Total))
		return err
	}
	return nil
}
