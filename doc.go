// Package pathgrid is an observable grid-pathfinding engine: six
// interchangeable search strategies over a 2D occupancy grid, every
// exploration step exposed as a resumable, pull-based sequence.
//
// 🚀 What is pathgrid?
//
//	A small, deterministic library for visualizing how searches think:
//		• Grid model: immutable-shape boards of Wall/Start/Goal cells
//		• Algorithms: depth-first, breadth-first, greedy-best-first,
//		  A*, open-area search, straight-line-biased A*
//		• Step protocol: Explore / Frontier / Path / Snapshot variants,
//		  produced lazily, one pull at a time
//		• Multi-goal tours: chained legs with grid state carried
//		  between goals
//		• Collaborators: text-format ingestion, seeded random boards,
//		  terminal animation, HCL run files
//
// ✨ Why choose pathgrid?
//
//   - Deterministic by contract – identical input, identical steps
//   - Safe by construction – grids are copied, never shared or mutated
//   - Honest failures – unreachable goals are a result, not a panic
//   - Pure engine – rendering and pacing live outside the algorithms
//
// Everything is organized under per-concern packages:
//
//	grid/    — cell states, coordinates, board queries and rewrites
//	search/  — the six strategies and the step-sequence contract
//	tour/    — the multi-goal orchestrator
//	gridio/  — text format parsing/encoding and random generation
//	viz/     — terminal animation with delay presets
//	config/  — HCL run files for the CLI
//	cmd/     — the pathgrid command-line tool
//
// Quick ASCII example:
//
//	    S . .
//	    # # .
//	    . . G
//
//	breadth-first explores S, (0,1), (0,2), (1,2) and reaches G with
//	the only path around the wall.
//
// Dive into the package docs for the step-by-step contracts.
package pathgrid
