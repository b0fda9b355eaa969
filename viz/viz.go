package viz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Sentinel errors for renderer configuration.
var (
	// ErrBadDelay indicates a delay outside the preset set.
	ErrBadDelay = errors.New("viz: delay must be one of 0, 15, 50, 100 ms")
	// ErrNilGrid indicates a nil board.
	ErrNilGrid = errors.New("viz: grid is nil")
	// ErrNilWriter indicates a nil output writer.
	ErrNilWriter = errors.New("viz: writer is nil")
)

// Delay is an inter-frame pause, in milliseconds, restricted to the
// four presets the playback UI offers.
type Delay int

// The preset delays.
const (
	Delay0   Delay = 0
	Delay15  Delay = 15
	Delay50  Delay = 50
	Delay100 Delay = 100
)

// Duration converts the preset to a time.Duration.
func (d Delay) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// ParseDelay validates ms against the preset set.
func ParseDelay(ms int) (Delay, error) {
	switch Delay(ms) {
	case Delay0, Delay15, Delay50, Delay100:
		return Delay(ms), nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrBadDelay, ms)
}

// cellGlyphs maps each cell state to its display rune.
var cellGlyphs = map[grid.CellState]rune{
	grid.Unexplored: '·',
	grid.Frontier:   '░',
	grid.Explored:   '▒',
	grid.Wall:       '█',
	grid.Start:      'S',
	grid.Goal:       'G',
	grid.Path:       '●',
}

// cellStyles maps each cell state to its terminal style.
var cellStyles = map[grid.CellState]color.Style{
	grid.Unexplored: {color.FgDarkGray},
	grid.Frontier:   {color.FgCyan},
	grid.Explored:   {color.FgBlue},
	grid.Wall:       {color.FgWhite},
	grid.Start:      {color.FgGreen, color.OpBold},
	grid.Goal:       {color.FgRed, color.OpBold},
	grid.Path:       {color.FgYellow, color.OpBold},
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDelay sets the inter-frame pause.
func WithDelay(d Delay) Option {
	return func(r *Renderer) { r.delay = d }
}

// WithPlain disables colors and cursor control: frames become plain
// rune matrices separated by blank lines. Intended for piped output
// and tests.
func WithPlain() Option {
	return func(r *Renderer) { r.plain = true }
}

// Renderer consumes search steps and writes animation frames.
type Renderer struct {
	out   io.Writer
	delay Delay
	plain bool

	// board is the current underlying grid; overlay carries the
	// transient annotations accumulated from steps. Painting never
	// touches board itself.
	board   *grid.Grid
	overlay map[grid.Coord]grid.CellState
}

// NewRenderer builds a renderer over the initial board.
func NewRenderer(g *grid.Grid, out io.Writer, opts ...Option) (*Renderer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if out == nil {
		return nil, ErrNilWriter
	}
	r := &Renderer{
		out:     out,
		board:   g,
		overlay: make(map[grid.Coord]grid.CellState),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Play pulls src to termination, writing one frame per step.
// Returns nil on success, search.ErrNoPath when the sequence ends
// without a path (after rendering what was explored), ctx.Err() on
// cancellation, or the writer's error.
func (r *Renderer) Play(ctx context.Context, src search.Source) error {
	// Opening frame: the untouched board.
	if err := r.frame(); err != nil {
		return err
	}
	for {
		step, err := src.Next()
		switch {
		case errors.Is(err, search.ErrDone):
			return nil
		case errors.Is(err, search.ErrNoPath):
			return err
		case err != nil:
			return err
		}

		r.apply(step)
		if err := r.frame(); err != nil {
			return err
		}
		if err := r.pause(ctx); err != nil {
			return err
		}
	}
}

// apply folds one step into the overlay (or swaps the board for a
// Snapshot). Persistent cells are never repainted.
func (r *Renderer) apply(step search.Step) {
	switch s := step.(type) {
	case search.Explore:
		r.paint(s.Cell, grid.Explored)
	case search.Frontier:
		for _, c := range s.Cells {
			// A re-enqueued cell may already be explored; exploration
			// wins.
			if r.overlay[c] != grid.Explored {
				r.paint(c, grid.Frontier)
			}
		}
	case search.Path:
		for _, c := range s.Cells {
			r.paint(c, grid.Path)
		}
	case search.Snapshot:
		r.board = s.Grid
		r.overlay = make(map[grid.Coord]grid.CellState)
	}
}

// paint annotates c unless the underlying cell is persistent.
func (r *Renderer) paint(c grid.Coord, state grid.CellState) {
	switch r.board.At(c) {
	case grid.Wall, grid.Start, grid.Goal:
		return
	}
	r.overlay[c] = state
}

// stateAt resolves the displayed state of a cell.
func (r *Renderer) stateAt(c grid.Coord) grid.CellState {
	if s, ok := r.overlay[c]; ok {
		return s
	}
	return r.board.At(c)
}

// frame writes the whole board once.
func (r *Renderer) frame() error {
	var b strings.Builder
	if !r.plain {
		// Home the cursor and clear so frames overdraw in place.
		b.WriteString("\x1b[H\x1b[2J")
	}
	for row := 0; row < r.board.Rows(); row++ {
		for col := 0; col < r.board.Cols(); col++ {
			s := r.stateAt(grid.Coord{Row: row, Col: col})
			if r.plain {
				b.WriteRune(cellGlyphs[s])
				continue
			}
			b.WriteString(cellStyles[s].Sprint(string(cellGlyphs[s])))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(r.out, b.String())

	return err
}

// pause sleeps the configured delay, or returns early on cancellation.
func (r *Renderer) pause(ctx context.Context) error {
	if r.delay == Delay0 {
		// Still honor cancellation between frames.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(r.delay.Duration())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
