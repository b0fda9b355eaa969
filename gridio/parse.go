package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// MaxSide is the largest accepted row or column count. Larger boards
// are rejected here and never reach the engine.
const MaxSide = 50

// Sentinel errors for ingestion and generation.
var (
	// ErrSyntax indicates a malformed line; wrapped errors carry the
	// line number.
	ErrSyntax = errors.New("gridio: malformed input")
	// ErrTooLarge indicates a dimension above MaxSide.
	ErrTooLarge = errors.New("gridio: grid exceeds maximum size")
	// ErrTooSmall indicates a board without room for start and goal.
	ErrTooSmall = errors.New("gridio: grid too small to place start and goal")
	// ErrOutOfBounds indicates a coordinate or wall rectangle outside
	// the board.
	ErrOutOfBounds = errors.New("gridio: coordinate outside the grid")
	// ErrBadOption indicates an invalid generator option value.
	ErrBadOption = errors.New("gridio: invalid option")
)

// Parse reads the textual grid format from r and returns the grid.
func Parse(r io.Reader) (*grid.Grid, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{n: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: need dimensions, start and goals lines", ErrSyntax)
	}

	rows, cols, err := parseDims(lines[0])
	if err != nil {
		return nil, err
	}

	cells := make([][]grid.CellState, rows)
	for i := range cells {
		cells[i] = make([]grid.CellState, cols)
	}
	bounds := grid.Coord{Row: rows, Col: cols}

	start, err := parseCoord(lines[1].text, lines[1].n, bounds)
	if err != nil {
		return nil, err
	}
	cells[start.Row][start.Col] = grid.Start

	goals, err := parseGoals(lines[2], bounds)
	if err != nil {
		return nil, err
	}
	for _, gc := range goals {
		if gc == start {
			return nil, fmt.Errorf("%w: line %d: goal coincides with start", ErrSyntax, lines[2].n)
		}
		cells[gc.Row][gc.Col] = grid.Goal
	}

	for _, ln := range lines[3:] {
		if err := applyWallRect(cells, ln, bounds); err != nil {
			return nil, err
		}
	}

	return grid.New(cells)
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*grid.Grid, error) {
	return Parse(strings.NewReader(s))
}

// line pairs a trimmed input line with its 1-based position.
type line struct {
	n    int
	text string
}

// parseDims reads "rows cols" and applies the size gates.
func parseDims(ln line) (rows, cols int, err error) {
	nums, err := parseInts(ln.text, 2, ln.n)
	if err != nil {
		return 0, 0, err
	}
	rows, cols = nums[0], nums[1]
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: line %d: dimensions must be positive", ErrSyntax, ln.n)
	}
	if rows > MaxSide || cols > MaxSide {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, rows, cols, MaxSide, MaxSide)
	}

	return rows, cols, nil
}

// parseCoord reads "row col" and bounds-checks it.
func parseCoord(text string, n int, bounds grid.Coord) (grid.Coord, error) {
	nums, err := parseInts(text, 2, n)
	if err != nil {
		return grid.Coord{}, err
	}
	c := grid.Coord{Row: nums[0], Col: nums[1]}
	if c.Row < 0 || c.Row >= bounds.Row || c.Col < 0 || c.Col >= bounds.Col {
		return grid.Coord{}, fmt.Errorf("%w: line %d: %v", ErrOutOfBounds, n, c)
	}

	return c, nil
}

// parseGoals reads the pipe-separated goal list.
func parseGoals(ln line, bounds grid.Coord) ([]grid.Coord, error) {
	parts := strings.Split(ln.text, "|")
	goals := make([]grid.Coord, 0, len(parts))
	seen := make(map[grid.Coord]bool, len(parts))
	for _, part := range parts {
		c, err := parseCoord(strings.TrimSpace(part), ln.n, bounds)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: line %d: duplicate goal %v", ErrSyntax, ln.n, c)
		}
		seen[c] = true
		goals = append(goals, c)
	}

	return goals, nil
}

// applyWallRect reads "row col width height" and paints the rectangle,
// leaving Start/Goal cells untouched.
func applyWallRect(cells [][]grid.CellState, ln line, bounds grid.Coord) error {
	nums, err := parseInts(ln.text, 4, ln.n)
	if err != nil {
		return err
	}
	top, left, width, height := nums[0], nums[1], nums[2], nums[3]
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: line %d: wall extent must be positive", ErrSyntax, ln.n)
	}
	if top < 0 || left < 0 || top+height > bounds.Row || left+width > bounds.Col {
		return fmt.Errorf("%w: line %d: wall %dx%d at (%d,%d)", ErrOutOfBounds, ln.n, width, height, top, left)
	}
	for r := top; r < top+height; r++ {
		for c := left; c < left+width; c++ {
			if cells[r][c] == grid.Start || cells[r][c] == grid.Goal {
				continue
			}
			cells[r][c] = grid.Wall
		}
	}

	return nil
}

// parseInts splits text into exactly want decimal integers.
func parseInts(text string, want, n int) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: line %d: want %d numbers, got %d", ErrSyntax, n, want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrSyntax, n, f)
		}
		out[i] = v
	}

	return out, nil
}

// Encode writes g in the textual format: dimensions, start, goals, and
// one height-1 wall rectangle per maximal horizontal wall run. The
// output round-trips through Parse. Transient annotations are not
// representable and are dropped.
func Encode(g *grid.Grid, w io.Writer) error {
	start, goals, err := g.LocateStartAndGoals()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", g.Rows(), g.Cols())
	fmt.Fprintf(&b, "%d %d\n", start.Row, start.Col)
	goalParts := make([]string, len(goals))
	for i, gc := range goals {
		goalParts[i] = fmt.Sprintf("%d %d", gc.Row, gc.Col)
	}
	b.WriteString(strings.Join(goalParts, "|"))
	b.WriteByte('\n')

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); {
			if g.At(grid.Coord{Row: r, Col: c}) != grid.Wall {
				c++
				continue
			}
			runStart := c
			for c < g.Cols() && g.At(grid.Coord{Row: r, Col: c}) == grid.Wall {
				c++
			}
			fmt.Fprintf(&b, "%d %d %d %d\n", r, runStart, c-runStart, 1)
		}
	}

	_, err = io.WriteString(w, b.String())

	return err
}
