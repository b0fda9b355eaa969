package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates no Start cell is present.
	ErrMissingStart = errors.New("grid: no start cell present")
	// ErrMissingGoal indicates no Goal cell is present.
	ErrMissingGoal = errors.New("grid: no goal cell present")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadReseed indicates a goal-to-start rewrite that would touch a
	// cell the persistent-state invariant protects.
	ErrBadReseed = errors.New("grid: invalid reseed rewrite")
)

// CellState is the state held by one grid cell.
type CellState uint8

const (
	// Unexplored marks a passable cell no search has touched.
	Unexplored CellState = iota
	// Frontier marks a discovered-but-not-yet-visited cell.
	Frontier
	// Explored marks a visited cell.
	Explored
	// Wall marks an impassable cell. Walls never change state.
	Wall
	// Start marks the single search origin.
	Start
	// Goal marks a search target; a grid may hold several.
	Goal
	// Path marks a cell on a reconstructed start→goal path.
	Path
)

// cellStateNames backs CellState.String; index matches the iota order.
var cellStateNames = [...]string{
	"Unexplored", "Frontier", "Explored", "Wall", "Start", "Goal", "Path",
}

// String returns the state's name, or "CellState(n)" for unknown values.
func (s CellState) String() string {
	if int(s) < len(cellStateNames) {
		return cellStateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Transient reports whether s is a search-produced annotation that
// ResetTransient clears (Frontier, Explored, or Path).
func (s CellState) Transient() bool {
	return s == Frontier || s == Explored || s == Path
}

// Coord identifies one cell by zero-indexed row and column.
// It is a value type: comparable, hashable, usable as a map key.
type Coord struct {
	Row, Col int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four orthogonal moves, in the canonical
// compass order Up, Left, Down, Right. This order is part of the
// engine's determinism contract: every strategy generates neighbor
// candidates in exactly this sequence.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Left decreases the column.
	Left
	// Down increases the row.
	Down
	// Right increases the column.
	Right
)

// directionNames backs Direction.String; index matches the iota order.
var directionNames = [...]string{"Up", "Left", "Down", "Right"}

// directionDeltas holds the row/col offset of each direction.
var directionDeltas = [...]Coord{
	Up:    {Row: -1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Down:  {Row: 1, Col: 0},
	Right: {Row: 0, Col: 1},
}

// String returns the direction's name, or "Direction(n)" for unknown values.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() Coord {
	return directionDeltas[d]
}

// Directions returns the four orthogonal directions in canonical order.
// The returned slice is a fresh copy; callers may reorder it freely.
func Directions() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// DirectionBetween returns the direction of a single orthogonal step
// from a to b; ok is false when a and b are not 4-adjacent.
func DirectionBetween(a, b Coord) (dir Direction, ok bool) {
	diff := Coord{Row: b.Row - a.Row, Col: b.Col - a.Col}
	for d, off := range directionDeltas {
		if diff == off {
			return Direction(d), true
		}
	}
	return 0, false
}
