package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// strategy bundles what distinguishes the six algorithms: the frontier
// container, the optional ranking key, whether per-cell best-known step
// counts gate re-enqueues (the A* relaxation skip), and whether
// neighbor candidates are pushed in reverse order (the depth-first
// stack trick).
type strategy struct {
	newFrontier func() frontier
	// priority computes the ranking key for a candidate arriving at
	// dest with stepsSoFar unit-cost moves from the start. Nil for the
	// unranked (insertion-ordered) strategies.
	priority func(r *Runner, dest grid.Coord, stepsSoFar int) float64
	// relaxed enables the best-known-step-count bookkeeping: a newly
	// discovered route to a cell is enqueued only if it does not exceed
	// the best count seen so far.
	relaxed bool
	// reversePush pushes neighbor candidates in reverse canonical order
	// so a LIFO frontier explores them in canonical order.
	reversePush bool
}

// strategyFor returns the strategy table entry for a. Callers validate
// a beforehand.
func strategyFor(a Algorithm) strategy {
	switch a {
	case DepthFirst:
		return strategy{
			newFrontier: func() frontier { return &stackFrontier{} },
			reversePush: true,
		}
	case BreadthFirst:
		return strategy{
			newFrontier: func() frontier { return &queueFrontier{} },
		}
	case GreedyBestFirst:
		return strategy{
			newFrontier: func() frontier { return &heapFrontier{} },
			priority: func(r *Runner, dest grid.Coord, _ int) float64 {
				return manhattanToNearest(dest, r.goals)
			},
		}
	case AStar:
		return strategy{
			newFrontier: func() frontier { return &heapFrontier{} },
			priority: func(r *Runner, dest grid.Coord, stepsSoFar int) float64 {
				return float64(stepsSoFar) + manhattanToNearest(dest, r.goals)
			},
			relaxed: true,
		}
	case OpenSearch:
		return strategy{
			newFrontier: func() frontier { return &heapFrontier{} },
			priority: func(r *Runner, dest grid.Coord, _ int) float64 {
				return float64(r.grid.CountAdjacentWalls(dest))
			},
		}
	default: // StraightLineAStar
		return strategy{
			newFrontier: func() frontier { return &heapFrontier{} },
			priority: func(r *Runner, dest grid.Coord, stepsSoFar int) float64 {
				return float64(stepsSoFar) +
					manhattanToNearest(dest, r.goals) +
					angularDeviation(dest, r.goals)
			},
			relaxed: true,
		}
	}
}

// Runner is one suspendable single-goal search. It owns its frontier
// and predecessor map exclusively; nothing is shared between runs, so
// an abandoned Runner leaves no state behind for the next one.
//
// A Runner never mutates the grid it searches.
type Runner struct {
	algo  Algorithm
	grid  *grid.Grid
	start grid.Coord
	goals []grid.Coord
	strat strategy
	front frontier

	// pred maps each visited cell to the cell it was reached from; the
	// start maps to itself. Key presence is the visited test.
	pred map[grid.Coord]grid.Coord
	// bestG holds the best-known step count per discovered cell; only
	// maintained for the relaxed strategies.
	bestG map[grid.Coord]int

	seq       uint64
	pending   []Step
	finishErr error
}

// New constructs a Runner over g using the given algorithm. The grid
// is validated up front: ErrNilGrid, ErrUnknownAlgorithm,
// grid.ErrMissingStart or grid.ErrMissingGoal are returned before any
// search work happens.
func New(g *grid.Grid, algo Algorithm) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: identifier %d", ErrUnknownAlgorithm, uint8(algo))
	}
	start, goals, err := g.LocateStartAndGoals()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		algo:  algo,
		grid:  g,
		start: start,
		goals: goals,
		strat: strategyFor(algo),
		pred:  make(map[grid.Coord]grid.Coord),
	}
	r.front = r.strat.newFrontier()
	if r.strat.relaxed {
		r.bestG = map[grid.Coord]int{start: 0}
	}

	// Seed the frontier with the start itself so the shared pop loop
	// handles the first expansion like any other.
	seed := move{from: start, to: start}
	if r.strat.priority != nil {
		seed.priority = r.strat.priority(r, start, 0)
	}
	r.push(seed)

	return r, nil
}

// Algorithm returns the identifier this Runner was built with.
func (r *Runner) Algorithm() Algorithm { return r.algo }

// Next produces the next step of the sequence.
//
// Termination: after the terminal Path step has been consumed, Next
// returns ErrDone. If the frontier empties before any goal is reached,
// Next returns ErrNoPath — once, and on every later call. The sequence
// is not restartable.
func (r *Runner) Next() (Step, error) {
	if len(r.pending) == 0 && r.finishErr == nil {
		r.advance()
	}
	if len(r.pending) > 0 {
		s := r.pending[0]
		r.pending = r.pending[1:]
		return s, nil
	}

	return nil, r.finishErr
}

// advance runs one pop iteration of the shared expansion loop,
// appending the step(s) it produces to the pending buffer:
// Explore, then either the terminal Path or a Frontier step.
func (r *Runner) advance() {
	for {
		m, ok := r.front.pop()
		if !ok {
			// Frontier exhausted without reaching any goal: the
			// documented recoverable outcome.
			r.finishErr = ErrNoPath
			return
		}
		// Lazy deletion: a cell may have been enqueued several times
		// with different sources before its first visit.
		if _, seen := r.pred[m.to]; seen {
			continue
		}
		r.pred[m.to] = m.from
		r.pending = append(r.pending, Explore{Cell: m.to})

		if r.grid.At(m.to) == grid.Goal {
			r.pending = append(r.pending, Path{Cells: reconstructPath(r.pred, r.start, m.to)})
			r.finishErr = ErrDone
			return
		}

		r.pending = append(r.pending, Frontier{Cells: r.expand(m)})
		return
	}
}

// expand generates the valid neighbor moves of the cell just visited,
// pushes them onto the frontier, and returns their destinations in
// push order. A neighbor is valid if it is in-bounds, not a Wall, and
// not yet visited; the relaxed strategies additionally skip routes
// worse than the best-known step count.
func (r *Runner) expand(m move) []grid.Coord {
	stepsNext := m.stepsSoFar + 1
	cands := make([]move, 0, 4)
	for _, d := range grid.Directions() {
		to := m.to.Add(d.Delta())
		// At reports Wall for out-of-bounds coordinates, so one check
		// covers both exclusions.
		if r.grid.At(to) == grid.Wall {
			continue
		}
		if _, seen := r.pred[to]; seen {
			continue
		}
		if r.strat.relaxed {
			if best, known := r.bestG[to]; known && stepsNext > best {
				continue
			}
			r.bestG[to] = stepsNext
		}
		next := move{from: m.to, to: to, stepsSoFar: stepsNext}
		if r.strat.priority != nil {
			next.priority = r.strat.priority(r, to, stepsNext)
		}
		cands = append(cands, next)
	}

	if r.strat.reversePush {
		// Reverse canonical order so the stack's own reversal explores
		// Up, Left, Down, Right. Externally observable; see doc.go.
		for i, j := 0, len(cands)-1; i < j; i, j = i+1, j-1 {
			cands[i], cands[j] = cands[j], cands[i]
		}
	}

	cells := make([]grid.Coord, len(cands))
	for i := range cands {
		r.push(cands[i])
		cells[i] = cands[i].to
	}

	return cells
}

// push stamps the move with the next insertion sequence number and
// enqueues it.
func (r *Runner) push(m move) {
	m.seq = r.seq
	r.seq++
	r.front.push(m)
}

// Collect drains src until termination and returns every produced step.
// The error is nil on success (a terminal Path step was produced),
// ErrNoPath when the goal was unreachable, or the first unexpected
// error from Next otherwise.
func Collect(src Source) ([]Step, error) {
	var steps []Step
	for {
		s, err := src.Next()
		switch {
		case err == nil:
			steps = append(steps, s)
		case errors.Is(err, ErrDone):
			return steps, nil
		default:
			return steps, err
		}
	}
}
