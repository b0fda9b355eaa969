// Package viz animates a search step sequence on a terminal.
//
// What:
//
//   - Renderer pulls steps from any search.Source (a single Runner or
//     a multi-goal Tour), maintains a paint overlay on top of the
//     board, and writes one frame per step to an io.Writer.
//   - Delay presets (0, 15, 50, 100 milliseconds) pace the animation;
//     ParseDelay validates user input against the closed set.
//   - Colors come from gookit/color; WithPlain disables styling and
//     cursor control for dumb writers and tests.
//
// The renderer is strictly a consumer: it never performs search logic
// and never mutates the grids it is handed. Persistent cells (Wall,
// Start, Goal) are never repainted; Explore/Frontier/Path steps only
// annotate cells that were free in the underlying board, and a
// Snapshot step swaps the board and clears the overlay.
//
// Cancellation: Play honors its context between frames. Abandoning a
// partially consumed sequence is fine by the engine's contract — no
// teardown call is needed.
package viz
