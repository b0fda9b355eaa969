package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// ExampleRunner demonstrates pulling the full step sequence of an A*
// search over a small grid.
func ExampleRunner() {
	cells := [][]grid.CellState{
		{grid.Start, grid.Unexplored, grid.Unexplored},
		{grid.Wall, grid.Wall, grid.Unexplored},
		{grid.Unexplored, grid.Unexplored, grid.Goal},
	}
	g, err := grid.New(cells)
	if err != nil {
		fmt.Println("grid:", err)
		return
	}

	r, err := search.New(g, search.AStar)
	if err != nil {
		fmt.Println("search:", err)
		return
	}
	for {
		step, err := r.Next()
		if errors.Is(err, search.ErrDone) {
			break
		}
		if errors.Is(err, search.ErrNoPath) {
			fmt.Println("goal unreachable")
			return
		}
		if p, ok := step.(search.Path); ok {
			fmt.Println("path:", p.Cells)
		}
	}
	// Output:
	// path: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleParseAlgorithm shows flag-style algorithm resolution.
func ExampleParseAlgorithm() {
	for _, name := range []string{"bfs", "straight-line-astar", "warp"} {
		a, err := search.ParseAlgorithm(name)
		if err != nil {
			fmt.Println(name, "→ error")
			continue
		}
		fmt.Println(name, "→", a)
	}
	// Output:
	// bfs → breadth-first
	// straight-line-astar → straight-line-astar
	// warp → error
}
