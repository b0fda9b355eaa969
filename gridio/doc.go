// Package gridio brings grids in and out of the engine: a text format
// for hand-written boards and a seeded random generator.
//
// Format:
//
//	rows cols
//	startRow startCol
//	goalRow goalCol|goalRow goalCol|...
//	wallRow wallCol width height
//	...
//
// Line 1 holds the dimensions, line 2 the start coordinate, line 3 one
// or more pipe-separated goal coordinates, and every further line one
// wall rectangle (top-left coordinate, then width in columns and
// height in rows). Blank lines are ignored. All numbers are
// whitespace-separated decimal integers; coordinates are zero-indexed
// row-major.
//
// Walls never bury the start or a goal: cells a rectangle would
// overwrite keep their Start/Goal state, matching the engine's
// persistent-cell invariant.
//
// Validation happens here, before the engine sees anything: grids with
// either side above MaxSide are rejected with ErrTooLarge, malformed
// numbers with ErrSyntax (wrapped with the offending line number), and
// coordinates or rectangles outside the board with ErrOutOfBounds.
//
// Generate produces a random board: ~20% wall density by default, the
// start at a random corner, a goal at the diagonally opposite corner,
// optional extra goals at the remaining corners and center. All
// randomness flows through the caller's *rand.Rand, so a fixed seed
// reproduces the board exactly.
package gridio
