package model

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedInput struct {
	commands []Command
	polls    int
}

func (in *scriptedInput) Poll() Command {
	defer func() { in.polls++ }()
	if in.polls < len(in.commands) {
		return in.commands[in.polls]
	}
	return CommandNone
}

type countingRenderer struct {
	frames []string
}

func (r *countingRenderer) Display(b *Board, hud HUD) {
	r.frames = append(r.frames, b.String())
}

func TestRunStopsOnQuit(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	in := &scriptedInput{commands: []Command{CommandNone, CommandAddLion, CommandQuit}}
	r := &countingRenderer{}

	if err := s.Run(context.Background(), r, in, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if s.Tick() != 3 || len(r.frames) != 3 {
		t.Errorf("ticks = %d, frames = %d; want 3, 3", s.Tick(), len(r.frames))
	}
	if s.Census().Lions != 1 {
		t.Errorf("lions = %d, want 1 added by command", s.Census().Lions)
	}
	if r.frames[0] != ".....\n.....\n.....\n.....\n.....\n" {
		t.Errorf("first frame should be empty, got %q", r.frames[0])
	}
	if NewBoard(5, 5).String() == r.frames[2] {
		t.Error("third frame should show the lion")
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	cfg := testConfig(5, 5)
	cfg.MaxTicks = 5
	s := NewSavanna(cfg)

	var reports []TickReport
	observe := func(_ *Savanna, report TickReport) error {
		reports = append(reports, report)
		return nil
	}

	if err := s.Run(context.Background(), nil, NoInput{}, observe); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Tick() != 5 || len(reports) != 5 || reports[4].Tick != 5 {
		t.Errorf("ticks = %d, reports = %d", s.Tick(), len(reports))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(5, 5)
	cfg.TickInterval = time.Hour
	s := NewSavanna(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, nil, NoInput{}, nil) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
	if s.Tick() != 1 {
		t.Errorf("ticks = %d, want 1", s.Tick())
	}
}

func TestRunPropagatesObserverError(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	boom := errors.New("boom")

	err := s.Run(context.Background(), nil, NoInput{}, func(*Savanna, TickReport) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}
