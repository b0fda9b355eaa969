package search

import (
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// manhattan returns |Δrow| + |Δcol| between a and b.
func manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// nearestGoal returns the goal with minimum Manhattan distance from c.
// Ties resolve to the earliest goal in the (row-major) goal slice, so
// the choice is deterministic. goals is never empty: Runner
// construction fails on goal-less grids.
func nearestGoal(c grid.Coord, goals []grid.Coord) grid.Coord {
	best := goals[0]
	bestDist := manhattan(c, best)
	for _, g := range goals[1:] {
		if d := manhattan(c, g); d < bestDist {
			best, bestDist = g, d
		}
	}

	return best
}

// manhattanToNearest is the heuristic shared by GreedyBestFirst, AStar
// and StraightLineAStar: Manhattan distance from c to its nearest goal.
func manhattanToNearest(c grid.Coord, goals []grid.Coord) float64 {
	return float64(manhattan(c, nearestGoal(c, goals)))
}

// angularDeviation is the straight-line bias term: the smaller of the
// two angles the displacement toward the nearest goal makes with the
// grid axes. Zero when c is aligned with the goal on a row or column,
// growing toward atan(1)=π/4 on the diagonal, so axis-aligned
// candidates rank ahead of equally distant diagonal ones.
func angularDeviation(c grid.Coord, goals []grid.Coord) float64 {
	g := nearestGoal(c, goals)
	dr := float64(abs(g.Row - c.Row))
	dc := float64(abs(g.Col - c.Col))
	if dr == 0 || dc == 0 {
		return 0
	}

	return math.Min(math.Atan(dc/dr), math.Atan(dr/dc))
}

// abs returns |n| for int n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
