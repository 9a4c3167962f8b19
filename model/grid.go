package model

import (
	"strings"

	"github.com/sheikhrachel/go-savanna/rules"
)

const (
	SymbolEmpty    = '.'
	SymbolAntelope = 'A'
	SymbolLion     = 'L'
)

// Position is a (row, column) cell on the board
type Position = rules.Cell

// Dimensions are the bounds of the board
type Dimensions struct {
	Rows    int
	Columns int
}

// IsOnBoard reports whether the cell lies within the board bounds
func (d Dimensions) IsOnBoard(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Columns
}

// IsCellReserved reports whether any living animal occupies the cell
func IsCellReserved(row, col int, animals []*Animal) bool {
	for _, a := range animals {
		if a.Alive && a.Row == row && a.Col == col {
			return true
		}
	}
	return false
}

/*
FreeCellsAround returns the cells an animal may move to this tick.

The 3x3 neighborhood is scanned column by column, keeping in-bounds unreserved cells, and the
animal's own cell is always appended last as the option to stay. Callers rank candidates with a
linear scan, so this order decides ties.
*/
func FreeCellsAround(d Dimensions, animal *Animal, animals []*Animal) []Position {
	cells := make([]Position, 0, 9)
	for col := animal.Col - 1; col <= animal.Col+1; col++ {
		for row := animal.Row - 1; row <= animal.Row+1; row++ {
			if d.IsOnBoard(row, col) && !IsCellReserved(row, col, animals) {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}
	return append(cells, animal.Position())
}

// FirstFreeCellAround returns the first free neighbor of the animal in scan order
func FirstFreeCellAround(d Dimensions, animal *Animal, animals []*Animal) (Position, bool) {
	for col := animal.Col - 1; col <= animal.Col+1; col++ {
		for row := animal.Row - 1; row <= animal.Row+1; row++ {
			if row == animal.Row && col == animal.Col {
				continue
			}
			if d.IsOnBoard(row, col) && !IsCellReserved(row, col, animals) {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Board is the rendering projection of the savanna
type Board struct {
	rows    int
	columns int
	cells   [][]rune
}

// NewBoard creates an empty board with the specified dimensions
func NewBoard(rows, columns int) *Board {
	b := &Board{}
	b.Reset(rows, columns)
	return b
}

// GetRows returns the number of rows of the board
func (b *Board) GetRows() int {
	return b.rows
}

// GetColumns returns the number of columns of the board
func (b *Board) GetColumns() int {
	return b.columns
}

// Reset resizes the board and empties every cell
func (b *Board) Reset(rows, columns int) {
	b.rows = rows
	b.columns = columns

	// Resize cells if needed
	if len(b.cells) != rows {
		b.cells = make([][]rune, rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != columns {
			b.cells[i] = make([]rune, columns)
		}
	}
	b.Clear()
}

// Clear empties every cell
func (b *Board) Clear() {
	for row := range b.rows {
		for col := range b.columns {
			b.cells[row][col] = SymbolEmpty
		}
	}
}

// Set places a symbol on a cell, ignoring out of bounds writes
func (b *Board) Set(row, col int, symbol rune) {
	if row >= 0 && row < b.rows && col >= 0 && col < b.columns {
		b.cells[row][col] = symbol
	}
}

// Get returns the symbol on a cell
func (b *Board) Get(row, col int) rune {
	if row < 0 || row >= b.rows || col < 0 || col >= b.columns {
		return SymbolEmpty
	}
	return b.cells[row][col]
}

// Count returns how many cells hold the symbol
func (b *Board) Count(symbol rune) (count int) {
	for row := range b.rows {
		for col := range b.columns {
			if b.cells[row][col] == symbol {
				count++
			}
		}
	}
	return
}

// String renders the board row-major, one line per row
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for row := range b.rows {
		for col := range b.columns {
			sb.WriteRune(b.cells[row][col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
