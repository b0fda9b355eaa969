package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// reconstructPath walks backward from goal through the predecessor map
// until it reaches start, then reverses the collected cells into a
// start→goal ordered sequence, both endpoints inclusive. The start's
// self-referencing entry terminates the walk.
func reconstructPath(pred map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	for cur := goal; cur != start; {
		prev, ok := pred[cur]
		if !ok || prev == cur {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse in place to get start → goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DirectionsAlongPath maps each non-final cell of path to the compass
// direction of travel toward its successor; the result has
// len(path)-1 entries. Returns ErrNotAdjacent if consecutive cells are
// not a single orthogonal step apart.
func DirectionsAlongPath(path []grid.Coord) ([]grid.Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}
	dirs := make([]grid.Direction, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		d, ok := grid.DirectionBetween(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %v → %v", ErrNotAdjacent, path[i], path[i+1])
		}
		dirs = append(dirs, d)
	}

	return dirs, nil
}

// VisitOrderIndexes maps each cell of path to the ascending list of
// positions at which the path visits it. A single-goal path visits
// every cell once; a tour path stitched across legs may revisit cells,
// which is what the per-cell index lists capture for rendering.
func VisitOrderIndexes(path []grid.Coord) map[grid.Coord][]int {
	idx := make(map[grid.Coord][]int, len(path))
	for i, c := range path {
		idx[c] = append(idx[c], i)
	}

	return idx
}
