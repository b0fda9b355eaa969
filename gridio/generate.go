package gridio

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathgrid/grid"
)

// DefaultWallDensity is the chance each free cell becomes a wall.
const DefaultWallDensity = 0.2

// GenOptions holds tunables for Generate.
type GenOptions struct {
	// WallDensity is the per-cell wall probability, in [0, 0.9].
	WallDensity float64
	// ExtraGoals adds up to three goals beyond the mandatory one: the
	// two remaining corners first, then the center.
	ExtraGoals int

	// internal error recorded during option parsing
	err error
}

// GenOption configures Generate via functional arguments. Invalid
// values are recorded and surfaced as ErrBadOption when Generate runs.
type GenOption func(*GenOptions)

// defaultGenOptions returns the baseline configuration.
func defaultGenOptions() GenOptions {
	return GenOptions{WallDensity: DefaultWallDensity}
}

// WithWallDensity overrides the wall probability. Values outside
// [0, 0.9] are rejected; the 0.9 cap keeps generated boards from
// degenerating into solid rock.
func WithWallDensity(p float64) GenOption {
	return func(o *GenOptions) {
		if p < 0 || p > 0.9 {
			o.err = fmt.Errorf("%w: wall density %v outside [0, 0.9]", ErrBadOption, p)
			return
		}
		o.WallDensity = p
	}
}

// WithExtraGoals requests n additional goals, 0 through 3.
func WithExtraGoals(n int) GenOption {
	return func(o *GenOptions) {
		if n < 0 || n > 3 {
			o.err = fmt.Errorf("%w: extra goals %d outside [0, 3]", ErrBadOption, n)
			return
		}
		o.ExtraGoals = n
	}
}

// Generate produces a random rows×cols board: the start at a corner
// chosen by rng, one goal at the diagonally opposite corner, optional
// extra goals, and walls sprinkled at the configured density. Start
// and goal cells are never walled over. Identical seeds yield
// identical boards.
//
// Returns ErrTooLarge, ErrTooSmall or ErrBadOption for bad parameters.
func Generate(rows, cols int, rng *rand.Rand, opts ...GenOption) (*grid.Grid, error) {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rows < 1 || cols < 1 {
		return nil, grid.ErrEmptyGrid
	}
	if rows > MaxSide || cols > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, rows, cols, MaxSide, MaxSide)
	}
	if rows*cols < 2 {
		return nil, ErrTooSmall
	}

	corners := []grid.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: cols - 1},
		{Row: rows - 1, Col: 0},
		{Row: rows - 1, Col: cols - 1},
	}
	startIdx := rng.Intn(len(corners))
	start := corners[startIdx]
	// The diagonally opposite corner mirrors both axes.
	opposite := corners[len(corners)-1-startIdx]

	cells := make([][]grid.CellState, rows)
	for i := range cells {
		cells[i] = make([]grid.CellState, cols)
	}
	cells[start.Row][start.Col] = grid.Start
	cells[opposite.Row][opposite.Col] = grid.Goal

	// Extra goals: the two remaining corners in declaration order, then
	// the center. Cells already holding Start/Goal are skipped (tiny
	// boards may collapse some candidates onto each other).
	if o.ExtraGoals > 0 {
		var candidates []grid.Coord
		for i, c := range corners {
			if i != startIdx && i != len(corners)-1-startIdx {
				candidates = append(candidates, c)
			}
		}
		candidates = append(candidates, grid.Coord{Row: rows / 2, Col: cols / 2})
		placed := 0
		for _, c := range candidates {
			if placed == o.ExtraGoals {
				break
			}
			if cells[c.Row][c.Col] != grid.Unexplored {
				continue
			}
			cells[c.Row][c.Col] = grid.Goal
			placed++
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r][c] != grid.Unexplored {
				continue
			}
			if rng.Float64() < o.WallDensity {
				cells[r][c] = grid.Wall
			}
		}
	}

	return grid.New(cells)
}
