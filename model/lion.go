package model

import "github.com/sheikhrachel/go-savanna/rules"

/*
moveLion chases the nearest antelope in sight, or wanders when there is none.

Every move costs health. A lion that ends its move within reach of its target feeds on it, and
takes the antelope's cell when the bite is fatal. Returns the antelope killed, if any.
*/
func (s *Savanna) moveLion(lion *Animal) *Animal {
	prey := nearest(lion, AnimalsInRange(lion, Antelope, s.animals))
	candidates := FreeCellsAround(s.dims, lion, s.animals)

	if prey == nil {
		s.randomMove(lion, candidates)
	} else {
		lion.MoveTo(candidates[rules.ClosestIndex(candidates, prey.Position())])
	}

	lion.Health -= s.cfg.LionHealthCost

	if prey == nil || !rules.WithinReach(lion.Position(), prey.Position()) {
		return nil
	}
	return s.feed(lion, prey)
}

func (s *Savanna) feed(lion, prey *Animal) *Animal {
	result := rules.ApplyFeeding(lion.Health, prey.Health, s.cfg.FeedAmount, s.cfg.LionMaxHealth)
	lion.Health = result.HunterHealth
	prey.Health = result.PreyHealth

	if !result.Killed {
		return nil
	}

	prey.Alive = false
	lion.MoveTo(prey.Position())
	return prey
}
