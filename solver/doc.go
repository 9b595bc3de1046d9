// Package solver provides a production-grade breadth-first search over any
// puzzle state implementing the State contract, yielding shortest move
// trails first with duplicate-position pruning.
//
// What
//
//   - Explore positions in non-decreasing move count from a start state.
//   - Streams solutions lazily through Solutions (an iter.Seq2), with
//     First and Solve as eager conveniences.
//   - Prunes duplicate positions by canonical fingerprint: the first trail
//     reaching any position is the shortest, later ones are discarded.
//   - An already-solved start yields the empty trail as its own shortest
//     solution.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a successor joins the frontier)
//   - OnDequeue (a state leaves the frontier for expansion)
//   - Honors a per-solution wall-time budget and context cancellation,
//     both polled cooperatively every CheckInterval examined moves.
//   - Reports Stats (states expanded, moves examined, frontier high-water
//     mark, solutions, elapsed) and Exhausted.
//
// Why
//
//   - Breadth-first order guarantees the first solution found is minimal
//     in moves, with no puzzle-specific heuristics required.
//   - The State contract is four methods; any position type with legal
//     moves, pure successor derivation, and a canonical rendering can be
//     searched unchanged.
//
// Determinism
//
//	The frontier is FIFO and LegalMoves is expected to enumerate in a
//	stable order, so searches are fully reproducible: equal inputs give
//	equal trails and equal Stats.
//
// Complexity (S = reachable states, b = legal moves per state)
//
//   - Time:   O(S·b) successor derivations, each a clone plus propagation.
//   - Memory: O(S) for the frontier and the seen set.
//
// Usage
//
//	g, err := grid.New(grid.WithGivens(rows...))
//	if err != nil { ... }
//
//	s, err := solver.New(g,
//	    solver.WithTimeLimit(time.Minute),
//	    solver.WithMaxSolutions(1),
//	)
//	if err != nil { ... }
//
//	trail, err := s.First()
//	switch {
//	case errors.Is(err, solver.ErrNoSolution): // exhausted, no solution
//	case errors.Is(err, solver.ErrTimeLimit):  // budget blown
//	case err != nil:                           // canceled
//	default:                                   // trail solves g
//	}
//
// Options
//
//   - DefaultOptions(): background Context, one solution, no time limit,
//     polling every 100 moves, logging every 1000, no-op hooks.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithMaxSolutions(n):   quota; n <= 0 exhausts the reachable space.
//   - WithTimeLimit(d):      per-solution wall-time budget (d > 0).
//   - WithCheckInterval(n):  moves between deadline/cancellation polls.
//   - WithLogger(l):         structured progress logging via log/slog.
//   - WithLogInterval(n):    moves between progress records.
//   - WithOnEnqueue(fn):     hook when a successor joins the frontier.
//   - WithOnDequeue(fn):     hook when a state is taken for expansion.
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option is supplied to New.
//   - ErrTimeLimit        if a solution request overruns its time budget.
//   - ErrNoSolution       from First and Solve after clean exhaustion.
//   - Wrapped context errors when the supplied Ctx is canceled.
//
// Exhaustion itself is not an error on the Solutions stream: the sequence
// simply ends, and Exhausted reports that the whole reachable space was
// covered.
package solver
