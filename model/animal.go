package model

import (
	"fmt"

	"github.com/sheikhrachel/go-savanna/rules"
)

// Species selects an animal's behavior and display symbol
type Species uint8

const (
	Lion Species = iota + 1
	Antelope
)

// String returns the species name
func (s Species) String() string {
	switch s {
	case Lion:
		return "lion"
	case Antelope:
		return "antelope"
	default:
		return fmt.Sprintf("species(%d)", uint8(s))
	}
}

// Symbol returns the board symbol of the species
func (s Species) Symbol() rune {
	switch s {
	case Lion:
		return SymbolLion
	case Antelope:
		return SymbolAntelope
	default:
		return SymbolEmpty
	}
}

// Animal is a single lion or antelope on the savanna
type Animal struct {
	ID       int
	Species  Species
	Row      int
	Col      int
	Vision   int
	Health   float64
	Alive    bool
	HasAPair bool
}

// Position returns the cell the animal stands on
func (a *Animal) Position() Position {
	return Position{Row: a.Row, Col: a.Col}
}

// MoveTo places the animal on a cell
func (a *Animal) MoveTo(p Position) {
	a.Row = p.Row
	a.Col = p.Col
}

// Symbol returns the board symbol of the animal
func (a *Animal) Symbol() rune {
	return a.Species.Symbol()
}

// LookAround returns the living animals within radius of animal, excluding its own cell,
// in population order
func LookAround(animal *Animal, animals []*Animal, radius int) []*Animal {
	var found []*Animal
	for _, other := range animals {
		if !other.Alive || (other.Row == animal.Row && other.Col == animal.Col) {
			continue
		}
		if rules.InVisionBox(animal.Position(), other.Position(), radius) {
			found = append(found, other)
		}
	}
	return found
}

// AnimalsInRange returns the living animals of the given species within the animal's vision
func AnimalsInRange(animal *Animal, species Species, animals []*Animal) []*Animal {
	var found []*Animal
	for _, other := range LookAround(animal, animals, animal.Vision) {
		if other.Species == species {
			found = append(found, other)
		}
	}
	return found
}

// nearest returns the animal closest to from, first found on ties
func nearest(from *Animal, targets []*Animal) *Animal {
	if len(targets) == 0 {
		return nil
	}
	cells := make([]Position, len(targets))
	for i, t := range targets {
		cells[i] = t.Position()
	}
	return targets[rules.NearestIndex(from.Position(), cells)]
}
