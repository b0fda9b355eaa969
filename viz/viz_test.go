package viz_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/tour"
	"github.com/katalvlaran/pathgrid/viz"
)

func mustGrid(t *testing.T, art []string) *grid.Grid {
	t.Helper()
	cells := make([][]grid.CellState, len(art))
	for r, line := range art {
		cells[r] = make([]grid.CellState, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				cells[r][c] = grid.Wall
			case 'S':
				cells[r][c] = grid.Start
			case 'G':
				cells[r][c] = grid.Goal
			}
		}
	}
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return g
}

func TestParseDelay(t *testing.T) {
	for _, ms := range []int{0, 15, 50, 100} {
		d, err := viz.ParseDelay(ms)
		if err != nil || int(d) != ms {
			t.Errorf("ParseDelay(%d) = %v,%v", ms, d, err)
		}
	}
	if _, err := viz.ParseDelay(30); !errors.Is(err, viz.ErrBadDelay) {
		t.Errorf("ParseDelay(30) error = %v; want ErrBadDelay", err)
	}
}

func TestNewRenderer_Errors(t *testing.T) {
	g := mustGrid(t, []string{"S.G"})
	if _, err := viz.NewRenderer(nil, &strings.Builder{}); !errors.Is(err, viz.ErrNilGrid) {
		t.Errorf("nil grid error = %v; want ErrNilGrid", err)
	}
	if _, err := viz.NewRenderer(g, nil); !errors.Is(err, viz.ErrNilWriter) {
		t.Errorf("nil writer error = %v; want ErrNilWriter", err)
	}
}

// TestPlay_PlainFrames runs a full search and checks the final frame:
// the path is painted, persistent cells keep their glyphs.
func TestPlay_PlainFrames(t *testing.T) {
	g := mustGrid(t, []string{
		"S.G",
		".#.",
	})
	r, err := search.New(g, search.BreadthFirst)
	if err != nil {
		t.Fatalf("search.New error: %v", err)
	}
	var out strings.Builder
	ren, err := viz.NewRenderer(g, &out, viz.WithPlain(), viz.WithDelay(viz.Delay0))
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	if err := ren.Play(context.Background(), r); err != nil {
		t.Fatalf("Play error: %v", err)
	}

	frames := strings.Split(strings.TrimRight(out.String(), "\n"), "\n\n")
	if len(frames) < 3 {
		t.Fatalf("got %d frames; want at least an opening, explores, and a path", len(frames))
	}
	last := frames[len(frames)-1]
	// Start and goal survive, the single free top-row cell carries the
	// path marker, and the wall is intact.
	wantLines := []string{"S●G", "▒█·"}
	gotLines := strings.Split(last, "\n")
	for i, want := range wantLines {
		if i >= len(gotLines) || gotLines[i] != want {
			t.Fatalf("final frame line %d = %q; want %q\nframe:\n%s", i, gotLines[i], want, last)
		}
	}
}

// TestPlay_UnreachableSurfacesNoPath keeps ErrNoPath visible to the
// caller after rendering.
func TestPlay_UnreachableSurfacesNoPath(t *testing.T) {
	g := mustGrid(t, []string{
		"S#G",
		".#.",
		".#.",
	})
	r, err := search.New(g, search.AStar)
	if err != nil {
		t.Fatalf("search.New error: %v", err)
	}
	var out strings.Builder
	ren, err := viz.NewRenderer(g, &out, viz.WithPlain())
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	if err := ren.Play(context.Background(), r); !errors.Is(err, search.ErrNoPath) {
		t.Errorf("Play error = %v; want search.ErrNoPath", err)
	}
	if out.Len() == 0 {
		t.Error("nothing rendered before the failure was reported")
	}
}

// TestPlay_TourSnapshotsSwapBoards renders a two-goal tour and checks
// that the board swap after the Snapshot clears the old overlay.
func TestPlay_TourSnapshotsSwapBoards(t *testing.T) {
	g := mustGrid(t, []string{
		"S.G",
		"..G",
	})
	tr, err := tour.New(g, search.BreadthFirst)
	if err != nil {
		t.Fatalf("tour.New error: %v", err)
	}
	var out strings.Builder
	ren, err := viz.NewRenderer(g, &out, viz.WithPlain())
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	if err := ren.Play(context.Background(), tr); err != nil {
		t.Fatalf("Play error: %v", err)
	}
	// After the snapshot the old start renders as unexplored ground in
	// at least one frame ('·' at position 0 of a frame's first line).
	sawSwappedBoard := false
	for _, frame := range strings.Split(out.String(), "\n\n") {
		if strings.HasPrefix(frame, "·") {
			sawSwappedBoard = true
			break
		}
	}
	if !sawSwappedBoard {
		t.Error("no frame shows the reseeded board after the Snapshot step")
	}
}

// TestPlay_Cancellation stops between frames once the context dies.
func TestPlay_Cancellation(t *testing.T) {
	g := mustGrid(t, []string{
		"S....",
		".....",
		"....G",
	})
	r, err := search.New(g, search.DepthFirst)
	if err != nil {
		t.Fatalf("search.New error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	ren, err := viz.NewRenderer(g, &out, viz.WithPlain(), viz.WithDelay(viz.Delay15))
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	if err := ren.Play(ctx, r); !errors.Is(err, context.Canceled) {
		t.Errorf("Play error = %v; want context.Canceled", err)
	}
}
