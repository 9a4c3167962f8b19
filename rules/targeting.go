package rules

import "math"

// Cell is a (row, column) coordinate on the board
type Cell struct {
	Row int
	Col int
}

// SquaredDistance returns the squared Euclidean distance between two cells
func SquaredDistance(a, b Cell) int {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return dr*dr + dc*dc
}

/*
NearestIndex returns the index of the cell in targets closest to from.

Ties resolve to the first minimal index found during the scan. Returns -1 when targets is empty.
*/
func NearestIndex(from Cell, targets []Cell) int {
	return ClosestIndex(targets, from)
}

// ClosestIndex returns the index of the candidate with the smallest squared distance to target,
// first found on ties, or -1 when there are no candidates
func ClosestIndex(candidates []Cell, target Cell) int {
	best := -1
	bestDist := math.MaxInt
	for i, c := range candidates {
		if d := SquaredDistance(c, target); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// FarthestIndex returns the index of the candidate with the largest squared distance to threat,
// first found on ties, or -1 when there are no candidates
func FarthestIndex(candidates []Cell, threat Cell) int {
	if len(candidates) == 0 {
		return -1
	}
	best := 0
	bestDist := 0
	for i, c := range candidates {
		if d := SquaredDistance(c, threat); d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

/*
WithinReach reports whether a predator at hunter can feed on prey.

The deltas are signed and only bounded from above, so a hunter up and to the left of its prey is
always within reach.
*/
func WithinReach(hunter, prey Cell) bool {
	return hunter.Row-prey.Row <= 1 && hunter.Col-prey.Col <= 1
}

// Adjacent reports whether two cells are within the same 3x3 neighborhood
func Adjacent(a, b Cell) bool {
	return abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1
}

// InVisionBox reports whether target lies inside the square of the given radius around from
func InVisionBox(from, target Cell, radius int) bool {
	return abs(from.Row-target.Row) <= radius && abs(from.Col-target.Col) <= radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
