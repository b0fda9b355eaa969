// Package search implements six interchangeable grid-search strategies
// sharing one observable, pull-based step protocol.
//
// What:
//
//   - Algorithm selects one of the closed set of strategies:
//     DepthFirst, BreadthFirst, GreedyBestFirst, AStar, OpenSearch,
//     StraightLineAStar.
//   - Runner is a suspendable single-goal search over a grid.Grid. It
//     locates its own start and goals, then produces a lazy, finite,
//     non-restartable sequence of Steps via Next().
//   - Step is a sealed tagged variant: Explore (one cell promoted from
//     frontier to visited), Frontier (newly discovered candidates, in
//     strategy order), Path (terminal, start→goal inclusive), and
//     Snapshot (emitted only by the tour orchestrator).
//   - Path helpers: DirectionsAlongPath and VisitOrderIndexes derive
//     rendering-oriented views from a reconstructed path.
//
// The six strategies share a single expansion loop and differ only in
// frontier container and priority key:
//
//	DepthFirst        LIFO stack    insertion order (see below)
//	BreadthFirst      FIFO queue    insertion order
//	GreedyBestFirst   min-heap      Manhattan distance to nearest goal
//	AStar             min-heap      steps so far + Manhattan distance
//	OpenSearch        min-heap      wall-adjacency count at destination
//	StraightLineAStar min-heap      A* key + angular deviation term
//
// Neighbor candidates are generated in the canonical compass order
// Up, Left, Down, Right. DepthFirst pushes them reversed (Right, Down,
// Left, Up) so that the stack's own reversal explores cells in the
// canonical order; this push order is a documented contract, visible
// in the emitted Frontier steps.
//
// Determinism:
//
//	Ranked frontiers break priority ties by insertion sequence
//	(first discovered wins), so two runs over the same grid and
//	algorithm produce identical step sequences. Golden-output tests
//	rely on this.
//
// Optimality:
//
//	BreadthFirst and AStar return true shortest paths (unit-cost
//	moves, Manhattan heuristic is admissible). GreedyBestFirst,
//	OpenSearch and StraightLineAStar are deliberately exploratory
//	variants with no optimality guarantee.
//
// Termination:
//
//   - Success: a terminal Path step, after which Next returns ErrDone.
//   - Exhaustion: the frontier empties without reaching a goal and
//     Next returns ErrNoPath — an expected outcome the caller
//     distinguishes by the absence of a Path step, not a crash.
//
// Complexity (R×C = N cells): O(N) pops for the unranked strategies,
// O(N log N) for the ranked ones; memory O(N) for the predecessor map,
// which doubles as the visited set and is owned by a single Runner.
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownAlgorithm: invalid Runner construction.
//   - grid.ErrMissingStart / grid.ErrMissingGoal: validation failures
//     surfaced before any step is produced (no partial work).
//   - ErrNoPath: frontier exhausted (recoverable outcome).
//   - ErrDone: the sequence already delivered its terminal step.
//   - ErrNotAdjacent: DirectionsAlongPath got a non-contiguous path.
package search
