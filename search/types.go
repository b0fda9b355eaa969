package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for Runner construction and the step sequence.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrUnknownAlgorithm is returned for an identifier outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrNoPath signals the frontier emptied before any goal was
	// reached. This is the expected unreachable-goal outcome, not a
	// programming error.
	ErrNoPath = errors.New("search: no reachable goal")
	// ErrDone is returned by Next once the sequence has already
	// delivered its terminal Path step.
	ErrDone = errors.New("search: step sequence finished")
	// ErrNotAdjacent is returned by DirectionsAlongPath for paths whose
	// consecutive cells are not 4-adjacent.
	ErrNotAdjacent = errors.New("search: path cells are not adjacent")
)

// Algorithm identifies one of the six search strategies.
type Algorithm uint8

const (
	// DepthFirst explores via a LIFO stack, no priority.
	DepthFirst Algorithm = iota
	// BreadthFirst explores via a FIFO queue; shortest path by edge count.
	BreadthFirst
	// GreedyBestFirst ranks the frontier by Manhattan distance to the
	// nearest goal; fast, not optimal.
	GreedyBestFirst
	// AStar ranks by steps-so-far plus Manhattan distance; optimal on
	// unit-cost grids.
	AStar
	// OpenSearch ranks by wall-adjacency at the destination, biasing
	// exploration toward open areas; not optimal.
	OpenSearch
	// StraightLineAStar adds an angular-deviation term to the A* key,
	// biasing toward visually straighter paths; not strictly optimal.
	StraightLineAStar
)

// algorithmNames backs Algorithm.String; index matches the iota order.
var algorithmNames = [...]string{
	"depth-first",
	"breadth-first",
	"greedy-best-first",
	"astar",
	"open-search",
	"straight-line-astar",
}

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a belongs to the closed identifier set.
func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmNames)
}

// Algorithms returns all identifiers in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{
		DepthFirst, BreadthFirst, GreedyBestFirst,
		AStar, OpenSearch, StraightLineAStar,
	}
}

// algorithmAliases maps accepted spellings to identifiers, keyed by
// lowercase name with separators stripped.
var algorithmAliases = map[string]Algorithm{
	"depthfirst":        DepthFirst,
	"dfs":               DepthFirst,
	"breadthfirst":      BreadthFirst,
	"bfs":               BreadthFirst,
	"greedybestfirst":   GreedyBestFirst,
	"greedy":            GreedyBestFirst,
	"astar":             AStar,
	"opensearch":        OpenSearch,
	"open":              OpenSearch,
	"straightlineastar": StraightLineAStar,
	"straightline":      StraightLineAStar,
}

// ParseAlgorithm resolves a user-supplied name (CLI flag, config file)
// to an Algorithm. Matching ignores case and the separators "-", "_"
// and " ". Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(name)
	for _, sep := range []string{"-", "_", " "} {
		key = strings.ReplaceAll(key, sep, "")
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Step is one externally observable unit of search progress. It is a
// sealed tagged variant: exactly Explore, Frontier, Path and Snapshot
// implement it. A step is produced once, consumed once, and carries no
// reference back into engine state.
type Step interface {
	isStep()
}

// Explore reports a single cell promoted from frontier to visited.
type Explore struct {
	Cell grid.Coord
}

// Frontier reports the newly discovered candidate cells of one
// expansion, in strategy-defined order. Cells may be empty, and a cell
// may reappear in later Frontier steps before it is visited (lazy
// deletion permits duplicate enqueues).
type Frontier struct {
	Cells []grid.Coord
}

// Path is the terminal success step: the reconstructed cells from
// start to goal, both inclusive.
type Path struct {
	Cells []grid.Coord
}

// Snapshot carries a rewritten grid. It is emitted only by the tour
// orchestrator, when the previous goal has been promoted to the next
// leg's start.
type Snapshot struct {
	Grid *grid.Grid
}

func (Explore) isStep()  {}
func (Frontier) isStep() {}
func (Path) isStep()     {}
func (Snapshot) isStep() {}

// Source is the minimal pull interface shared by Runner and the tour
// orchestrator: produce the next step, or report termination via
// ErrNoPath / ErrDone.
type Source interface {
	Next() (Step, error)
}
