package model

import (
	"context"
	"log/slog"
	"time"
)

// Observer is notified after every completed tick
type Observer func(s *Savanna, report TickReport) error

/*
Run drives the savanna tick by tick.

Each tick is rendered, simulated and reported to observe, then the loop pauses for the tick interval
and applies one command from in. It stops on the quit command, when ctx is cancelled or after
MaxTicks ticks. Errors from the tick or the observer end the run.
*/
func (s *Savanna) Run(ctx context.Context, r Renderer, in InputSource, observe Observer) error {
	for {
		report, err := s.Step(r)
		if err != nil {
			return err
		}

		if observe != nil {
			if err = observe(s, report); err != nil {
				return err
			}
		}

		if s.cfg.MaxTicks > 0 && s.tick >= s.cfg.MaxTicks {
			slog.Info("max ticks reached", "tick", s.tick)
			return nil
		}

		if !pause(ctx, s.cfg.TickInterval) {
			slog.Info("simulation interrupted", "tick", s.tick)
			return nil
		}

		if s.Apply(in.Poll()) {
			slog.Info("quit requested", "tick", s.tick)
			return nil
		}
	}
}

// pause waits for d and reports false if ctx ended first
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
