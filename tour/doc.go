// Package tour chains single-goal searches into a multi-goal tour.
//
// What:
//
//   - Tour runs one search.Runner leg per Goal cell found in the input
//     grid, in row-major goal order of discovery, and re-emits every
//     leg step verbatim through the same pull-based Next() contract.
//   - Between legs the grid is rewritten: transient annotations reset,
//     the goal just reached promoted to Start, the previous Start
//     reverted to Unexplored. The rewritten grid is announced with a
//     search.Snapshot step before the next leg's steps begin.
//   - A grid holding exactly one goal degrades to a plain pass-through
//     of the single leg, with no Snapshot.
//
// Why:
//
//   - "Visit every goal" visualization mode: the caller keeps pulling
//     from one sequence and repaints on Snapshot boundaries, without
//     orchestrating legs itself.
//
// Failure:
//
//   - A leg that exhausts its frontier surfaces search.ErrNoPath and
//     aborts the remaining legs. Steps already emitted for earlier
//     legs stand; nothing is retracted. After the final leg, Next
//     returns search.ErrDone.
//
// The orchestrator never mutates the caller's grid: every rewrite
// produces a fresh grid (grid.ResetTransient, grid.Reseed), and the
// Snapshot step carries that fresh value.
package tour
