package grid

// Grid is a rectangular matrix of cell states. It is immutable from
// the caller's point of view: constructors deep-copy their input and
// every rewriting operation returns a fresh Grid, so a retained
// reference never changes underneath its holder.
type Grid struct {
	rows, cols int
	cells      [][]CellState
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	dup := make([][]CellState, rows)
	for r := 0; r < rows; r++ {
		dup[r] = make([]CellState, cols)
		copy(dup[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, cells: dup}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of cell c. Out-of-bounds coordinates report
// Wall, so callers probing neighbors need no separate bounds branch;
// use InBounds when the distinction matters.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

// Cells returns a deep copy of the underlying matrix.
// Complexity: O(R×C).
func (g *Grid) Cells() [][]CellState {
	dup := make([][]CellState, g.rows)
	for r := 0; r < g.rows; r++ {
		dup[r] = make([]CellState, g.cols)
		copy(dup[r], g.cells[r])
	}

	return dup
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// Equal reports whether g and other have identical dimensions and
// cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}

	return true
}

// LocateStartAndGoals scans every cell once and returns the single
// Start coordinate and all Goal coordinates in row-major order.
// Returns ErrMissingStart if no Start cell exists, ErrMissingGoal if
// no Goal cell exists. Both are user-input validation failures, not
// search failures.
// Complexity: O(R×C).
func (g *Grid) LocateStartAndGoals() (Coord, []Coord, error) {
	var (
		start    Coord
		goals    []Coord
		hasStart bool
	)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.cells[r][c] {
			case Start:
				start = Coord{Row: r, Col: c}
				hasStart = true
			case Goal:
				goals = append(goals, Coord{Row: r, Col: c})
			}
		}
	}
	if !hasStart {
		return Coord{}, nil, ErrMissingStart
	}
	if len(goals) == 0 {
		return Coord{}, nil, ErrMissingGoal
	}

	return start, goals, nil
}

// CountAdjacentWalls returns how many of c's 4-neighborhood cells are
// walls. Out-of-bounds neighbors do not count. Used by the open-area
// search heuristic.
// Complexity: O(1).
func (g *Grid) CountAdjacentWalls(c Coord) int {
	n := 0
	for _, d := range directionDeltas {
		nb := c.Add(d)
		if g.InBounds(nb) && g.cells[nb.Row][nb.Col] == Wall {
			n++
		}
	}

	return n
}

// ResetTransient returns a new grid with every Frontier, Explored and
// Path cell set back to Unexplored. Wall, Start and Goal cells are
// preserved unchanged. Idempotent.
// Complexity: O(R×C).
func (g *Grid) ResetTransient() *Grid {
	out := g.Clone()
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			if out.cells[r][c].Transient() {
				out.cells[r][c] = Unexplored
			}
		}
	}

	return out
}

// Reseed returns a new grid implementing the between-legs rewrite of a
// multi-goal tour: newStart (the goal just reached) becomes Start and
// oldStart reverts to Unexplored.
//
// Returns ErrOutOfBounds if either coordinate is outside the grid, and
// ErrBadReseed unless newStart currently holds Goal and oldStart
// currently holds Start — the only exchange the persistent-cell
// invariant permits.
// Complexity: O(R×C) (one clone).
func (g *Grid) Reseed(newStart, oldStart Coord) (*Grid, error) {
	if !g.InBounds(newStart) || !g.InBounds(oldStart) {
		return nil, ErrOutOfBounds
	}
	if g.cells[newStart.Row][newStart.Col] != Goal {
		return nil, ErrBadReseed
	}
	if g.cells[oldStart.Row][oldStart.Col] != Start {
		return nil, ErrBadReseed
	}
	out := g.Clone()
	out.cells[newStart.Row][newStart.Col] = Start
	out.cells[oldStart.Row][oldStart.Col] = Unexplored

	return out, nil
}
