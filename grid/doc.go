// Package grid provides the constraint-propagating state for placement
// puzzles in the Sudoku family: every cell carries a candidate bitset that
// only ever shrinks, and each placement triggers eliminations that often
// resolve large parts of the grid without search.
//
// What
//
//   - New(opts...) builds a puzzle from givens and verifies the One Rule.
//   - Apply(m) performs a move in place with full propagation.
//   - CopyAndMove(m) derives a successor grid, leaving the parent intact.
//   - LegalMoves() lazily yields every move that survives a trial
//     propagation, best-first for search.
//   - Fingerprint() returns the canonical text form used to deduplicate
//     search states; String() is the same rendering.
//   - Solved(), Valid(), Candidates(), Symbol(), Rows() inspect state.
//
// Why
//
//   - Pure brute force over an N×N grid explodes; eliminating candidates
//     after every placement prunes the space enough that even hard 9×9
//     puzzles fall to a few thousand trial moves.
//   - The clone-before-mutate discipline (CopyAndMove) gives the search
//     engine immutable-from-outside states without undo logs.
//
// Propagation pipeline
//
//	Resolving a cell removes its symbol from every open cell sharing a
//	group (the kill cascade, recursing through collapses), then drives
//	three strategies to a fixed point:
//	  - singleton: a group where only one open cell admits a symbol
//	    forces that placement
//	  - line elimination: a region whose candidates for a symbol share
//	    one row or column excludes that symbol from the rest of the line
//	  - hidden pair: two symbols confined to the same two cells of a
//	    group purge everything else from those cells
//	A contradiction anywhere aborts the whole move with ErrRuleViolation.
//
// Complexity (N = size)
//
//   - Apply/CopyAndMove: the kill cascade touches each cell at most N
//     times overall (candidates only shrink); each strategy pass is
//     O(N³) with O(1) bitset steps.
//   - LegalMoves: one trial propagation per candidate move.
//   - Fingerprint/String: O(N²).
//
// Usage
//
//	g, err := grid.New(grid.WithGivens(
//	    "5.1.7...6",
//	    "6.....14.",
//	    ".....4.2.",
//	    ".5...92.8",
//	    "....8....",
//	    "2.85...7.",
//	    ".3.1.....",
//	    ".65.....2",
//	    "9...6.3.7",
//	))
//	if err != nil {
//	    // ErrOptionViolation, ErrRuleViolation, or a geometry error
//	}
//	if g.Solved() {
//	    fmt.Print(g) // propagation alone finished it
//	}
//
// Errors
//
//   - ErrOptionViolation  for inconsistent construction options.
//   - ErrRuleViolation    for moves or givens breaking the One Rule, and
//     for contradictions found during propagation. Recoverable: discard
//     the attempted transition.
//   - ErrAlgorithm        for internal consistency failures. A defect
//     signal; do not retry.
//   - geometry.ErrBadSize / geometry.ErrNotSquare pass through from shape
//     construction.
//
// A grid is single-owner mutable state: share only via CopyAndMove or
// Clone, never concurrently.
package grid
