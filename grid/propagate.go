package grid

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/gridlock/geometry"
)

// resolveCell narrows cell i to symbol s. Callers guarantee the cell is
// open and admits s.
func (g *Grid) resolveCell(i, s int) {
	g.cells[i] = 1 << uint(s)
	g.placed[s]++
	g.unresolved--
}

// removeCandidate drops symbol s from cell i. A no-op when s is already
// gone. Emptying a cell is the hard stop of the One Rule; collapsing to a
// single candidate resolves the cell, and the caller cascades from it.
func (g *Grid) removeCandidate(i, s int) (removed, collapsed bool, err error) {
	bit := uint64(1) << uint(s)
	cur := g.cells[i]
	if cur&bit == 0 {
		return false, false, nil
	}
	rest := cur &^ bit
	if rest == 0 {
		return false, false, fmt.Errorf("%w: removing %c leaves (%d,%d) without candidates",
			ErrRuleViolation, g.alphabet[s], i/g.size, i%g.size)
	}
	g.cells[i] = rest
	if bits.OnesCount64(rest) == 1 {
		g.placed[bits.TrailingZeros64(rest)]++
		g.unresolved--

		return true, true, nil
	}

	return true, false, nil
}

// kill removes s from every open cell sharing a group with (row, col),
// cascading recursively through each collapse. Resolved cells are skipped;
// a conflicting resolved neighbor is caught by the group check afterwards,
// not here.
func (g *Grid) kill(row, col, s int) error {
	for _, rc := range g.geo.Neighborhood(row, col) {
		i := rc.Row*g.size + rc.Col
		if g.isResolved(i) {
			continue
		}
		_, collapsed, err := g.removeCandidate(i, s)
		if err != nil {
			return err
		}
		if collapsed {
			if err := g.kill(rc.Row, rc.Col, bits.TrailingZeros64(g.cells[i])); err != nil {
				return err
			}
		}
	}

	return nil
}

// place resolves cell i to s, runs the kill cascade, and verifies no group
// ended up holding a symbol twice.
func (g *Grid) place(i, s int) error {
	g.valid = validUnknown
	g.resolveCell(i, s)
	if err := g.kill(i/g.size, i%g.size, s); err != nil {
		return err
	}
	if !g.Valid() {
		return fmt.Errorf("%w: %c at (%d,%d) conflicts after the cascade",
			ErrRuleViolation, g.alphabet[s], i/g.size, i%g.size)
	}

	return nil
}

// deduce drives the strategy loop to a fixed point: forced singletons
// first, then line elimination, then hidden pairs. Every placement loops
// back through place, so each deduction re-enters the kill cascade before
// the next scan.
func (g *Grid) deduce() error {
	for {
		if i, s, ok := g.findSingleton(); ok {
			if err := g.place(i, s); err != nil {
				return err
			}
			continue
		}
		changed, err := g.pointingPairs()
		if err != nil {
			return err
		}
		if changed {
			continue
		}
		if g.doublePairs() {
			continue
		}

		return nil
	}
}

// findSingleton looks for a group where exactly one open cell still admits
// a symbol; that placement is forced.
func (g *Grid) findSingleton() (cell, symbol int, ok bool) {
	for s := 0; s < g.size; s++ {
		if g.placed[s] == g.size {
			continue
		}
		bit := uint64(1) << uint(s)
		for _, group := range g.geo.Groups() {
			found := -1
			n := 0
			for _, rc := range group {
				i := rc.Row*g.size + rc.Col
				if g.isResolved(i) || g.cells[i]&bit == 0 {
					continue
				}
				if n++; n > 1 {
					break
				}
				found = i
			}
			if n == 1 {
				return found, s, true
			}
		}
	}

	return 0, 0, false
}

// pointingPairs scans every region: when all of a region's open cells
// admitting a symbol share one row or column, that symbol cannot appear
// elsewhere on the shared line, so it is removed there. Collapses cascade
// immediately; the group check runs once after the sweep.
func (g *Grid) pointingPairs() (bool, error) {
	changed := false
	collapsed := false
	for rgn, region := range g.geo.Regions() {
		for s := 0; s < g.size; s++ {
			if g.placed[s] == g.size {
				continue
			}
			bit := uint64(1) << uint(s)
			count := 0
			row, col := -1, -1
			for _, rc := range region {
				i := rc.Row*g.size + rc.Col
				if g.isResolved(i) || g.cells[i]&bit == 0 {
					continue
				}
				if count++; count == 1 {
					row, col = rc.Row, rc.Col
					continue
				}
				if rc.Row != row {
					row = -1
				}
				if rc.Col != col {
					col = -1
				}
			}
			if count < 2 || (row < 0 && col < 0) {
				continue
			}

			line := g.geo.Groups()[g.size+col]
			if row >= 0 {
				line = g.geo.Groups()[row]
			}
			ch, co, err := g.purgeLine(line, rgn, s)
			changed = changed || ch
			collapsed = collapsed || co
			if err != nil {
				return changed, err
			}
		}
	}
	if collapsed {
		g.valid = validUnknown
		if !g.Valid() {
			return changed, fmt.Errorf("%w: forced placements conflict after line elimination", ErrRuleViolation)
		}
	}

	return changed, nil
}

// purgeLine removes s from the line's open cells outside region rgn.
func (g *Grid) purgeLine(line geometry.Group, rgn, s int) (changed, collapsed bool, err error) {
	for _, rc := range line {
		i := rc.Row*g.size + rc.Col
		if g.geo.RegionOf(rc.Row, rc.Col) == rgn || g.isResolved(i) {
			continue
		}
		removed, co, err := g.removeCandidate(i, s)
		if err != nil {
			return changed, collapsed, err
		}
		changed = changed || removed
		if co {
			collapsed = true
			if err := g.kill(rc.Row, rc.Col, bits.TrailingZeros64(g.cells[i])); err != nil {
				return changed, collapsed, err
			}
		}
	}

	return changed, collapsed, nil
}

// doublePairs hunts hidden pairs: two symbols whose group-wide candidate
// cells are the same two cells must occupy exactly those cells, so every
// other candidate is purged from them. Purged cells keep both symbols, so
// no collapse or conflict is possible here.
func (g *Grid) doublePairs() bool {
	changed := false
	for _, group := range g.geo.Groups() {
		// rebuild position masks after every purge; a purge in this group
		// invalidates them
		for g.pairPurge(group) {
			changed = true
		}
	}

	return changed
}

// pairPurge applies at most one hidden-pair purge within the group and
// reports whether anything was removed.
func (g *Grid) pairPurge(group geometry.Group) bool {
	pos := make([]uint64, g.size)
	for k, rc := range group {
		i := rc.Row*g.size + rc.Col
		if g.isResolved(i) {
			continue
		}
		c := g.cells[i]
		for c != 0 {
			s := bits.TrailingZeros64(c)
			c &^= 1 << uint(s)
			pos[s] |= 1 << uint(k)
		}
	}

	for a := 0; a < g.size; a++ {
		if bits.OnesCount64(pos[a]) != 2 || g.placed[a] == g.size {
			continue
		}
		for b := a + 1; b < g.size; b++ {
			if pos[b] != pos[a] || g.placed[b] == g.size {
				continue
			}
			keep := uint64(1)<<uint(a) | uint64(1)<<uint(b)
			purged := false
			pm := pos[a]
			for pm != 0 {
				k := bits.TrailingZeros64(pm)
				pm &^= 1 << uint(k)
				i := group[k].Row*g.size + group[k].Col
				if g.cells[i]&^keep != 0 {
					g.cells[i] &= keep
					purged = true
				}
			}
			if purged {
				return true
			}
		}
	}

	return false
}
