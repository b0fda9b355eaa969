// Package grid models a rectangular 2D occupancy grid for pathfinding.
//
// What:
//
//   - CellState enumerates the seven states a cell can hold: the three
//     persistent ones (Wall, Start, Goal), the resting state
//     (Unexplored), and the three transient search annotations
//     (Frontier, Explored, Path).
//   - Coord is a zero-indexed (Row, Col) value type, comparable and
//     directly usable as a map key.
//   - Grid wraps a rectangular [][]CellState. Constructors deep-copy
//     their input; every rewriting operation returns a fresh Grid, so
//     a caller retaining an older reference never observes a change.
//   - Queries: InBounds, At, LocateStartAndGoals, CountAdjacentWalls.
//   - Rewrites: ResetTransient (transient states back to Unexplored),
//     Reseed (promote a reached goal to the new start between legs of
//     a multi-goal tour).
//
// Why:
//
//   - Search engines need a grid snapshot they can trust not to move
//     underneath them; copy-on-rewrite gives that without locks.
//   - Start/Goal/Wall immutability is the core safety invariant of the
//     whole module: no operation in this package (and, by contract,
//     none elsewhere) turns a Wall into anything else, and only Reseed
//     may rewrite a Start or Goal cell, by its documented exchange.
//
// Complexity (R = rows, C = cols):
//
//   - New, Clone, ResetTransient, Reseed, LocateStartAndGoals: O(R×C).
//   - InBounds, At, CountAdjacentWalls: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrMissingGoal: grid validation before search.
//   - ErrOutOfBounds: a coordinate falls outside the grid.
//   - ErrBadReseed: the goal-to-start exchange would violate the
//     persistent-cell invariant.
package grid
