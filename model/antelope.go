package model

import "github.com/sheikhrachel/go-savanna/rules"

// moveAntelope steps away from the nearest lion in sight, or wanders when there is none
func (s *Savanna) moveAntelope(antelope *Animal) {
	threat := nearest(antelope, AnimalsInRange(antelope, Lion, s.animals))
	candidates := FreeCellsAround(s.dims, antelope, s.animals)

	if threat == nil {
		s.randomMove(antelope, candidates)
		return
	}
	antelope.MoveTo(candidates[rules.FarthestIndex(candidates, threat.Position())])
}
