package model

import "sync"

// BoardPool recycles the board the savanna projects onto every tick.
// Boards handed out by Get are always empty: Put wipes them on the way back in.
type BoardPool struct {
	boards sync.Pool
}

func NewBoardPool() *BoardPool {
	p := &BoardPool{}
	p.boards.New = func() any { return new(Board) }
	return p
}

// Get returns an empty rows x columns board, resizing a recycled one when the bounds changed
func (p *BoardPool) Get(rows, columns int) *Board {
	b := p.boards.Get().(*Board)
	if b.rows != rows || b.columns != columns || b.cells == nil {
		b.Reset(rows, columns)
	}
	return b
}

// Put clears the projected animals off b and recycles it. A nil board is ignored.
func (p *BoardPool) Put(b *Board) {
	if b == nil {
		return
	}
	b.Clear()
	p.boards.Put(b)
}
