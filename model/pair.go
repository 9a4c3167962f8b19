package model

import "github.com/sheikhrachel/go-savanna/rules"

// Pair bonds two neighboring animals of the same species
type Pair struct {
	First                *Animal
	Second               *Animal
	RelationshipDuration int
	Exists               bool
}

func newPair(first, second *Animal) *Pair {
	first.HasAPair = true
	second.HasAPair = true
	return &Pair{First: first, Second: second, Exists: true}
}

// Intact reports whether both partners are alive and still next to each other
func (p *Pair) Intact() bool {
	return p.First.Alive && p.Second.Alive && rules.Adjacent(p.First.Position(), p.Second.Position())
}

// Dissolve releases both partners
func (p *Pair) Dissolve() {
	p.First.HasAPair = false
	p.Second.HasAPair = false
	p.Exists = false
}

// freePartner returns the first unpaired neighbor of the same species
func freePartner(animal *Animal, animals []*Animal) *Animal {
	for _, other := range LookAround(animal, animals, 1) {
		if !other.HasAPair && other.Species == animal.Species {
			return other
		}
	}
	return nil
}

/*
CreatePairs bonds unpaired animals with a free neighbor of their own species, walking the population
in creation order.

With StrictPairingScan the walk stops at the first unpaired animal that has no partner, so later
animals wait for a following tick. Otherwise every animal is considered. Returns the number of pairs
formed.
*/
func (s *Savanna) CreatePairs() (formed int) {
	for _, current := range s.animals {
		if !current.Alive || current.HasAPair {
			continue
		}

		partner := freePartner(current, s.animals)
		if partner == nil {
			if s.cfg.StrictPairingScan {
				return formed
			}
			continue
		}

		s.pairs = append(s.pairs, newPair(current, partner))
		formed++
	}
	return formed
}

/*
CheckPairs ages the pairs that are still together and dissolves the rest.

A pair that reaches the relationship duration gives birth through its first partner and starts
counting again from zero.
*/
func (s *Savanna) CheckPairs() (births, dissolved int) {
	kept := s.pairs[:0]
	for _, p := range s.pairs {
		if !p.Intact() {
			p.Dissolve()
			dissolved++
			continue
		}

		p.RelationshipDuration++
		if p.RelationshipDuration >= s.cfg.RelationshipDuration {
			if child := s.GiveBirth(p.First); child != nil {
				s.animals = append(s.animals, child)
				births++
			}
			p.RelationshipDuration = 0
		}
		kept = append(kept, p)
	}

	clear(s.pairs[len(kept):])
	s.pairs = kept
	return births, dissolved
}
