package model

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

const (
	welcomeMessage  = "Welcome to the Savanna!"
	addAntelopeHint = "Press A to add Antelope to the Game field."
	addLionHint     = "Press L to add Lion to the Game field."
	quitHint        = "Press Esc to quit game."
)

// HUD carries the status line values shown under the board
type HUD struct {
	Tick              int
	Lions             int
	Antelopes         int
	Pairs             int
	AverageLionHealth float64
}

// String formats the status line
func (h HUD) String() string {
	return fmt.Sprintf("Tick: %d | Lions: %d | Antelopes: %d | Pairs: %d | Avg lion health: %.1f",
		h.Tick, h.Lions, h.Antelopes, h.Pairs, h.AverageLionHealth)
}

// Renderer draws one frame per tick
type Renderer interface {
	Display(b *Board, hud HUD)
}

// frameLines lays out a full frame: banner, board rows, status and instructions
func frameLines(b *Board, hud HUD) []string {
	lines := make([]string, 0, b.GetRows()+8)
	lines = append(lines, welcomeMessage, "")

	row := make([]rune, b.GetColumns())
	for r := range b.GetRows() {
		for c := range b.GetColumns() {
			row[c] = b.Get(r, c)
		}
		lines = append(lines, string(row))
	}

	return append(lines, "", hud.String(), addAntelopeHint, addLionHint, quitHint)
}

// TextRenderer writes plain text frames, for headless runs
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Display writes the frame followed by a blank separator line
func (r *TextRenderer) Display(b *Board, hud HUD) {
	for _, line := range frameLines(b, hud) {
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}

// TerminalRenderer draws frames on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Display renders the frame to the terminal
func (r *TerminalRenderer) Display(b *Board, hud HUD) {
	r.screen.Clear()
	for y, line := range frameLines(b, hud) {
		for x, ch := range []rune(line) {
			r.screen.SetContent(x, y, ch, nil, symbolStyle(ch, y, b))
		}
	}
	r.screen.Show()
}

// Close restores the terminal
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}

// symbolStyle colors animals inside the board area only
func symbolStyle(ch rune, y int, b *Board) tcell.Style {
	const boardTop = 2
	if y < boardTop || y >= boardTop+b.GetRows() {
		return tcell.StyleDefault
	}
	switch ch {
	case SymbolLion:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case SymbolAntelope:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}
