package grid

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"slices"
)

// Apply performs m on the receiver, in place, with full propagation: the
// kill cascade plus the deduction strategies, run to a fixed point. A move
// whose cell is already resolved to the same symbol is a no-op.
//
// On ErrRuleViolation the grid is left at the last internally consistent
// propagation step, not rolled back; callers must discard it. Use
// CopyAndMove to keep the predecessor intact.
func (g *Grid) Apply(m Move) error {
	return g.apply(m, true)
}

// apply places m, optionally propagating. Shared by Apply, CopyAndMove
// (through the clone), and given processing.
func (g *Grid) apply(m Move, propagate bool) error {
	s, ok := g.index[m.Symbol]
	if !ok {
		return fmt.Errorf("%w: %v: symbol not in the alphabet", ErrRuleViolation, m)
	}
	if m.Row < 0 || m.Row >= g.size || m.Col < 0 || m.Col >= g.size {
		return fmt.Errorf("%w: %v: cell outside the grid", ErrRuleViolation, m)
	}
	i := m.Row*g.size + m.Col
	if g.cells[i]&(1<<uint(s)) == 0 {
		return fmt.Errorf("%w: %v: symbol is not a candidate", ErrRuleViolation, m)
	}
	// Earlier cascades can resolve a cell before its own move arrives;
	// such a move is redundant, not an error.
	if g.isResolved(i) {
		return nil
	}

	g.valid = validUnknown
	g.cache = nil
	if !propagate {
		g.resolveCell(i, s)
		return nil
	}

	if err := g.place(i, s); err != nil {
		return err
	}
	if err := g.deduce(); err != nil {
		return err
	}
	if !g.Valid() {
		return fmt.Errorf("%w: invalid state at a propagation fixed point", ErrAlgorithm)
	}

	return nil
}

// CopyAndMove returns a new grid with m applied and fully propagated,
// leaving the receiver's puzzle state untouched. The clone LegalMoves
// produced while vetting m is reused when it matches, so the enumerate/
// commit pattern costs one propagation, not two. Returns ErrRuleViolation
// when m is not a candidate or propagation finds a contradiction; the
// failed clone is discarded.
func (g *Grid) CopyAndMove(m Move) (*Grid, error) {
	if c := g.cache; c != nil {
		g.cache = nil
		if c.move == m {
			return c.next, nil
		}
	}

	next := g.Clone()
	if err := next.Apply(m); err != nil {
		return nil, err
	}

	return next, nil
}

// LegalMoves yields every move that survives a full trial propagation,
// symbols closest to fully placed first. Each yielded move's propagated
// clone is cached, making the immediately following CopyAndMove free.
//
// An invalid grid yields nothing. The sequence is single-use and must not
// run concurrently with mutation of the grid. An internal consistency
// failure during a trial panics: it signals a defect, never puzzle data.
func (g *Grid) LegalMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if !g.Valid() {
			return
		}
		for _, m := range g.moveOrder() {
			next, err := g.CopyAndMove(m)
			if err != nil {
				if !errors.Is(err, ErrRuleViolation) {
					panic(err)
				}
				continue
			}
			g.cache = &moveCache{move: m, next: next}
			if !yield(m) {
				return
			}
		}
	}
}

// moveOrder ranks candidate moves: symbols by most grid-wide placements
// first (ties in alphabet order), then open cells row-major. The ordering
// only steers the search; correctness never depends on it.
func (g *Grid) moveOrder() []Move {
	order := make([]int, g.size)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if d := g.placed[b] - g.placed[a]; d != 0 {
			return d
		}
		return a - b
	})

	moves := make([]Move, 0, g.unresolved)
	for _, s := range order {
		if g.placed[s] == g.size {
			continue
		}
		bit := uint64(1) << uint(s)
		for i, c := range g.cells {
			if bits.OnesCount64(c) == 1 || c&bit == 0 {
				continue
			}
			moves = append(moves, Move{Row: i / g.size, Col: i % g.size, Symbol: g.alphabet[s]})
		}
	}

	return moves
}
