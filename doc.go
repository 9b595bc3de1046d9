// Package gridlock solves Sudoku-family placement puzzles: square grids,
// free-form regions, any alphabet — propagation first, breadth-first
// search for whatever is left.
//
// 🚀 What is gridlock?
//
//	A small, deterministic puzzle engine that brings together:
//		• Geometry: rows, columns and regions of an N×N grid, derived once and shared
//		• Constraint grids: candidate bitsets narrowed by placement cascades,
//		  hidden singles, line elimination and hidden pairs
//		• Search: a generic breadth-first solver streaming fewest-moves solutions
//		• Catalog: builtin reference puzzles plus strict YAML puzzle sets
//		• CLI: gridlock solve / gridlock bench
//
// ✨ Why choose gridlock?
//
//   - Deterministic – same puzzle, same trail, same statistics, every run
//   - Honest exhaustion – the engine can prove "no more solutions exist"
//   - Puzzle-agnostic core – anything implementing solver.State can be searched
//   - Pure Go data plane – the grid is bitset arithmetic, no reflection
//
// Under the hood, everything is organized under five packages:
//
//	geometry/ — grid dimensions, region partitions, neighborhoods
//	grid/     — the constraint grid: givens, propagation, legal moves, rendering
//	solver/   — generic breadth-first search over any State implementation
//	catalog/  — named puzzles: builtin set + YAML loading
//	cmd/      — the gridlock binary (solve, bench)
//
// Quick ASCII example:
//
//	 5  .  1 │ .  7  . │ .  .  6
//	 6  .  . │ .  .  . │ 1  4  .
//	 .  .  . │ .  .  4 │ .  2  .
//
//	givens propagate as they land; easy grids never reach the searcher.
//
//	go get github.com/katalvlaran/gridlock
package gridlock
