package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Tour sequences one search leg per goal in the input grid, carrying
// rewritten grid state between legs. It satisfies search.Source.
type Tour struct {
	algo search.Algorithm

	// cur is the grid of the leg in flight; a fresh value per leg, so
	// the caller's input grid is never touched.
	cur    *grid.Grid
	runner *search.Runner

	legsTotal int
	legsDone  int

	// lastPath remembers the current leg's terminal path; its endpoints
	// are the next leg's old start and new start.
	lastPath []grid.Coord

	finishErr error
}

// New constructs a Tour over g using the given algorithm. Validation
// mirrors search.New: ErrNilGrid, ErrUnknownAlgorithm,
// grid.ErrMissingStart or grid.ErrMissingGoal surface before any step
// is produced.
func New(g *grid.Grid, algo search.Algorithm) (*Tour, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	_, goals, err := g.LocateStartAndGoals()
	if err != nil {
		return nil, err
	}

	// Leg 0 runs on a transient-free copy; later legs rebuild from it.
	cur := g.ResetTransient()
	runner, err := search.New(cur, algo)
	if err != nil {
		return nil, err
	}

	return &Tour{
		algo:      algo,
		cur:       cur,
		runner:    runner,
		legsTotal: len(goals),
	}, nil
}

// Algorithm returns the identifier every leg runs with.
func (t *Tour) Algorithm() search.Algorithm { return t.algo }

// Legs returns the total number of legs (goals) of the tour.
func (t *Tour) Legs() int { return t.legsTotal }

// Next produces the next step of the tour sequence: the current leg's
// steps verbatim, a search.Snapshot at each leg boundary, then the next
// leg's steps. Termination follows the search contract: search.ErrDone
// after the last leg's Path step, search.ErrNoPath (sticky) as soon as
// any leg's goal proves unreachable — remaining legs are abandoned,
// already-delivered steps stand.
func (t *Tour) Next() (search.Step, error) {
	if t.finishErr != nil {
		return nil, t.finishErr
	}

	s, err := t.runner.Next()
	switch {
	case err == nil:
		if p, ok := s.(search.Path); ok {
			t.lastPath = p.Cells
		}
		return s, nil
	case errors.Is(err, search.ErrDone):
		return t.nextLeg()
	default:
		// ErrNoPath, or a grid validation failure from a rewritten leg.
		t.finishErr = err
		return nil, err
	}
}

// nextLeg closes the finished leg and, if goals remain, rewrites the
// grid and returns the Snapshot step opening the next leg.
func (t *Tour) nextLeg() (search.Step, error) {
	t.legsDone++
	if t.legsDone >= t.legsTotal {
		t.finishErr = search.ErrDone
		return nil, t.finishErr
	}

	// The finished leg's path runs oldStart → reachedGoal.
	oldStart := t.lastPath[0]
	reached := t.lastPath[len(t.lastPath)-1]

	next, err := t.cur.ResetTransient().Reseed(reached, oldStart)
	if err != nil {
		// Unreachable with a well-formed engine; surfaced rather than
		// swallowed in case a future rewrite breaks the invariant.
		t.finishErr = fmt.Errorf("tour: leg %d rewrite: %w", t.legsDone, err)
		return nil, t.finishErr
	}
	runner, err := search.New(next, t.algo)
	if err != nil {
		t.finishErr = fmt.Errorf("tour: leg %d: %w", t.legsDone, err)
		return nil, t.finishErr
	}

	t.cur = next
	t.runner = runner

	return search.Snapshot{Grid: next}, nil
}
