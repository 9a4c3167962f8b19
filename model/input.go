package model

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Command is an instruction read from the player between ticks
type Command int

const (
	CommandNone Command = iota
	CommandAddLion
	CommandAddAntelope
	CommandQuit
)

// InputSource is polled once per tick and must never block
type InputSource interface {
	Poll() Command
}

// NoInput never issues commands
type NoInput struct{}

func (NoInput) Poll() Command { return CommandNone }

// CommandForKey maps a key press to a command
func CommandForKey(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'l':
			return CommandAddLion
		case 'a':
			return CommandAddAntelope
		}
	}
	return CommandNone
}

// KeyboardInput reads commands from terminal key events.
// Pump must run in its own goroutine to feed Poll.
type KeyboardInput struct {
	screen tcell.Screen
	events chan tcell.Event
}

func NewKeyboardInput(screen tcell.Screen) *KeyboardInput {
	return &KeyboardInput{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
}

// Pump forwards screen events until the screen is finalized or ctx is done
func (k *KeyboardInput) Pump(ctx context.Context) error {
	for {
		ev := k.screen.PollEvent()
		if ev == nil {
			return nil
		}

		select {
		case k.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// Poll returns the first command among the pending events, or CommandNone
func (k *KeyboardInput) Poll() Command {
	for {
		select {
		case ev := <-k.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd := CommandForKey(ev.Key(), ev.Rune()); cmd != CommandNone {
					return cmd
				}
			case *tcell.EventResize:
				k.screen.Sync()
			}
		default:
			return CommandNone
		}
	}
}
