package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/pathgrid/grid"
)

// Short aliases keep the test fixtures readable.
const (
	U = grid.Unexplored
	F = grid.Frontier
	E = grid.Explored
	W = grid.Wall
	S = grid.Start
	G = grid.Goal
	P = grid.Path
)

// mustNew builds a grid or fails the test.
func mustNew(t *testing.T, cells [][]grid.CellState) *grid.Grid {
	t.Helper()
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return g
}

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.CellState
		err   error
	}{
		{"EmptyRows", [][]grid.CellState{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.CellState{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.CellState{{U, U}, {U}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.cells); !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies ensures the constructor is insulated from later
// mutation of the input slice.
func TestNew_DeepCopies(t *testing.T) {
	cells := [][]grid.CellState{{S, U}, {U, G}}
	g := mustNew(t, cells)
	cells[0][0] = W
	if got := g.At(grid.Coord{Row: 0, Col: 0}); got != S {
		t.Errorf("At(0,0) = %v after input mutation; want Start", got)
	}
}

// TestInBoundsAndAt checks bounds behavior, including the documented
// out-of-bounds-reads-as-Wall convention.
func TestInBoundsAndAt(t *testing.T) {
	g := mustNew(t, [][]grid.CellState{
		{S, U, U},
		{U, W, G},
	})
	if !g.InBounds(grid.Coord{Row: 1, Col: 2}) {
		t.Error("InBounds(1,2) = false; want true")
	}
	for _, c := range []grid.Coord{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 0}} {
		if g.InBounds(c) {
			t.Errorf("InBounds%v = true; want false", c)
		}
		if got := g.At(c); got != grid.Wall {
			t.Errorf("At%v = %v; want Wall for out-of-bounds", c, got)
		}
	}
	if got := g.At(grid.Coord{Row: 1, Col: 1}); got != grid.Wall {
		t.Errorf("At(1,1) = %v; want Wall", got)
	}
}

// TestLocateStartAndGoals covers the happy path and both validation errors.
func TestLocateStartAndGoals(t *testing.T) {
	t.Run("RowMajorGoalOrder", func(t *testing.T) {
		g := mustNew(t, [][]grid.CellState{
			{U, G, U},
			{S, U, G},
		})
		start, goals, err := g.LocateStartAndGoals()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := (grid.Coord{Row: 1, Col: 0}); start != want {
			t.Errorf("start = %v; want %v", start, want)
		}
		wantGoals := []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}}
		if diff := cmp.Diff(wantGoals, goals); diff != "" {
			t.Errorf("goals mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("MissingStart", func(t *testing.T) {
		g := mustNew(t, [][]grid.CellState{{U, G}})
		if _, _, err := g.LocateStartAndGoals(); !errors.Is(err, grid.ErrMissingStart) {
			t.Errorf("error = %v; want ErrMissingStart", err)
		}
	})
	t.Run("MissingGoal", func(t *testing.T) {
		g := mustNew(t, [][]grid.CellState{{S, U}})
		if _, _, err := g.LocateStartAndGoals(); !errors.Is(err, grid.ErrMissingGoal) {
			t.Errorf("error = %v; want ErrMissingGoal", err)
		}
	})
}

// TestCountAdjacentWalls checks corners, edges, and interior cells.
func TestCountAdjacentWalls(t *testing.T) {
	g := mustNew(t, [][]grid.CellState{
		{W, U, W},
		{U, U, W},
		{S, W, G},
	})
	cases := []struct {
		c    grid.Coord
		want int
	}{
		{grid.Coord{Row: 1, Col: 1}, 2}, // walls below and right
		{grid.Coord{Row: 0, Col: 1}, 2}, // walls left and right; no neighbor above
		{grid.Coord{Row: 2, Col: 0}, 1}, // wall right; two neighbors out of bounds
		{grid.Coord{Row: 2, Col: 2}, 2},
	}
	for _, tc := range cases {
		if got := g.CountAdjacentWalls(tc.c); got != tc.want {
			t.Errorf("CountAdjacentWalls%v = %d; want %d", tc.c, got, tc.want)
		}
	}
}

// TestResetTransient verifies transient states clear, persistent states
// survive, and the operation is pure and idempotent.
func TestResetTransient(t *testing.T) {
	g := mustNew(t, [][]grid.CellState{
		{S, F, E},
		{P, W, G},
	})
	reset := g.ResetTransient()

	want := mustNew(t, [][]grid.CellState{
		{S, U, U},
		{U, W, G},
	})
	if !reset.Equal(want) {
		t.Errorf("ResetTransient mismatch:\ngot  %v\nwant %v", reset.Cells(), want.Cells())
	}
	// Purity: the receiver keeps its annotations.
	if got := g.At(grid.Coord{Row: 0, Col: 1}); got != F {
		t.Errorf("receiver mutated: At(0,1) = %v; want Frontier", got)
	}
	// Idempotence.
	if again := reset.ResetTransient(); !again.Equal(reset) {
		t.Error("ResetTransient is not idempotent")
	}
}

// TestReseed covers the legal exchange and every rejected rewrite.
func TestReseed(t *testing.T) {
	g := mustNew(t, [][]grid.CellState{
		{S, U, G},
		{U, W, G},
	})
	t.Run("Exchange", func(t *testing.T) {
		out, err := g.Reseed(grid.Coord{Row: 0, Col: 2}, grid.Coord{Row: 0, Col: 0})
		if err != nil {
			t.Fatalf("Reseed error: %v", err)
		}
		if got := out.At(grid.Coord{Row: 0, Col: 2}); got != grid.Start {
			t.Errorf("new start = %v; want Start", got)
		}
		if got := out.At(grid.Coord{Row: 0, Col: 0}); got != grid.Unexplored {
			t.Errorf("old start = %v; want Unexplored", got)
		}
		// The untouched goal survives.
		if got := out.At(grid.Coord{Row: 1, Col: 2}); got != grid.Goal {
			t.Errorf("other goal = %v; want Goal", got)
		}
		// Purity: original grid unchanged.
		if got := g.At(grid.Coord{Row: 0, Col: 0}); got != grid.Start {
			t.Errorf("receiver mutated: At(0,0) = %v; want Start", got)
		}
	})
	t.Run("Rejections", func(t *testing.T) {
		cases := []struct {
			name     string
			newStart grid.Coord
			oldStart grid.Coord
			err      error
		}{
			{"NewStartNotGoal", grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 0}, grid.ErrBadReseed},
			{"NewStartIsWall", grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 0, Col: 0}, grid.ErrBadReseed},
			{"OldStartNotStart", grid.Coord{Row: 0, Col: 2}, grid.Coord{Row: 1, Col: 0}, grid.ErrBadReseed},
			{"OutOfBounds", grid.Coord{Row: 5, Col: 5}, grid.Coord{Row: 0, Col: 0}, grid.ErrOutOfBounds},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := g.Reseed(tc.newStart, tc.oldStart); !errors.Is(err, tc.err) {
					t.Errorf("Reseed error = %v; want %v", err, tc.err)
				}
			})
		}
	})
}

// TestDirections pins the canonical compass order and delta arithmetic.
func TestDirections(t *testing.T) {
	want := []grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}
	if diff := cmp.Diff(want, grid.Directions()); diff != "" {
		t.Errorf("Directions mismatch (-want +got):\n%s", diff)
	}
	origin := grid.Coord{Row: 3, Col: 3}
	for _, d := range grid.Directions() {
		dst := origin.Add(d.Delta())
		got, ok := grid.DirectionBetween(origin, dst)
		if !ok || got != d {
			t.Errorf("DirectionBetween(%v,%v) = %v,%v; want %v,true", origin, dst, got, ok, d)
		}
	}
	if _, ok := grid.DirectionBetween(origin, grid.Coord{Row: 4, Col: 4}); ok {
		t.Error("DirectionBetween accepted a diagonal step")
	}
}
