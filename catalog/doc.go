// Package catalog bundles named puzzle definitions and loads user-supplied
// puzzle sets from YAML.
//
// What:
//
//   - Puzzle: one declarative puzzle definition (dimensions, regions,
//     alphabet, givens, optional known solution, bench repeat count).
//   - Builtin: the bundled reference set, from newspaper-easy 9×9 grids to
//     a 12×12 with 3×4 boxes and an unsolvable 2×2 with diagonal regions.
//   - Get: builtin lookup by name.
//   - Load / LoadFile: strict YAML decoding of user catalogs; unknown
//     fields, duplicate names and malformed definitions are rejected.
//   - (Puzzle).Grid: constructs the ready-to-solve constraint grid.
//   - (Puzzle).Reference: the known solution, when one is recorded.
//
// Why:
//
//   - The solve and bench commands need a shared, declarative source of
//     puzzles rather than grids hard-coded per call site.
//   - Strict decoding catches catalog typos (a misspelled field name fails
//     loudly instead of silently dropping a constraint).
//
// Region masks:
//
//   - Custom partitions are written as N rows of N labels; cells sharing a
//     label share a region, numbered by first appearance in row-major
//     order. "AB" / "BA" describes the two diagonals of a 2×2 grid.
//   - Rectangular boxes are declared with box_rows/box_cols instead.
//
// Errors:
//
//   - ErrPuzzle: structurally invalid definition; the message names the
//     puzzle.
//   - ErrNoPuzzles: the document defines no puzzles.
//
// Rule-level problems (contradictory givens, symbols outside the alphabet)
// are not catalog errors; they surface from (Puzzle).Grid as the grid
// package's own sentinels.
package catalog
