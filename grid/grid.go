// Package grid implements the constraint-propagating puzzle state: one
// candidate bitset per cell, narrowed by moves, kill cascades, and the
// deduction strategies, with a deterministic rendering that doubles as the
// search fingerprint.
package grid

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/katalvlaran/gridlock/geometry"
)

// Grid is one puzzle position. The zero value is not usable; construct
// with New. A Grid is owned by a single caller at a time: CopyAndMove
// hands out fresh clones, and a Grid that reported a rule violation from
// Apply must not be used further.
type Grid struct {
	geo         *geometry.Geometry
	size        int
	alphabet    []rune       // shared, read-only
	index       map[rune]int // symbol → bit position; shared, read-only
	placeholder rune

	cells      []uint64 // row-major candidate bitsets
	placed     []int    // per-symbol resolved count
	unresolved int
	valid      validity
	cache      *moveCache
}

// New builds a grid from functional options, places every given, and
// verifies the One Rule holds. With autosolve enabled (the default) each
// given is fully propagated, which alone solves many easy puzzles.
//
// Returns ErrOptionViolation for inconsistent options, a geometry error
// when the shape cannot be built, and ErrRuleViolation for malformed or
// contradictory givens.
func New(opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	geo, size, err := resolveShape(&o)
	if err != nil {
		return nil, err
	}

	alphabet, err := resolveAlphabet(&o, size)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		geo:         geo,
		size:        size,
		alphabet:    alphabet,
		index:       make(map[rune]int, size),
		placeholder: o.Placeholder,
		cells:       make([]uint64, size*size),
		placed:      make([]int, size),
	}
	for i, sym := range alphabet {
		g.index[sym] = i
	}

	full := ^uint64(0) >> (64 - uint(size))
	for i := range g.cells {
		g.cells[i] = full
	}
	if size == 1 {
		// one symbol means every cell is born resolved
		g.placed[0] = 1
	} else {
		g.unresolved = size * size
	}

	if err := g.placeGivens(o.Givens, o.Autosolve); err != nil {
		return nil, err
	}
	if !g.Valid() {
		return nil, fmt.Errorf("%w: givens place a symbol twice in one group", ErrRuleViolation)
	}

	return g, nil
}

// resolveShape settles the geometry and dimension from the options.
func resolveShape(o *Options) (*geometry.Geometry, int, error) {
	if o.Geometry != nil {
		if o.Regions != nil {
			return nil, 0, fmt.Errorf("%w: WithGeometry and WithRegions are mutually exclusive", ErrOptionViolation)
		}
		size := o.Geometry.Size()
		if o.Size != 0 && o.Size != size {
			return nil, 0, fmt.Errorf("%w: size %d disagrees with geometry size %d", ErrOptionViolation, o.Size, size)
		}
		if size > MaxSize {
			return nil, 0, fmt.Errorf("%w: geometry size %d exceeds %d", ErrOptionViolation, size, MaxSize)
		}

		return o.Geometry, size, nil
	}

	size := o.Size
	if size == 0 {
		size = 9
	}

	var gopts []geometry.Option
	if o.Regions != nil {
		gopts = append(gopts, geometry.WithRegions(o.Regions))
	}
	geo, err := geometry.New(size, gopts...)
	if err != nil {
		return nil, 0, err
	}

	return geo, size, nil
}

// resolveAlphabet settles the symbol set: the caller's, validated, or the
// default digits-then-letters run.
func resolveAlphabet(o *Options, size int) ([]rune, error) {
	alphabet := o.Alphabet
	if alphabet == nil {
		if size > len(defaultSymbols) {
			return nil, fmt.Errorf("%w: no default alphabet for size %d; supply WithAlphabet", ErrOptionViolation, size)
		}
		alphabet = slices.Clone(defaultSymbols[:size])
	}

	if len(alphabet) != size {
		return nil, fmt.Errorf("%w: alphabet holds %d symbols, grid needs %d", ErrOptionViolation, len(alphabet), size)
	}
	seen := make(map[rune]struct{}, size)
	for _, sym := range alphabet {
		if sym == o.Placeholder {
			return nil, fmt.Errorf("%w: placeholder %q is also an alphabet symbol", ErrOptionViolation, sym)
		}
		if _, dup := seen[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q in alphabet", ErrOptionViolation, sym)
		}
		seen[sym] = struct{}{}
	}

	return alphabet, nil
}

var defaultSymbols = []rune("123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// placeGivens parses and applies the initial rows.
func (g *Grid) placeGivens(rows []string, autosolve bool) error {
	if len(rows) > g.size {
		return fmt.Errorf("%w: %d given rows for a %d-row grid", ErrRuleViolation, len(rows), g.size)
	}
	for r, row := range rows {
		symbols, err := g.parseRow(row)
		if err != nil {
			return fmt.Errorf("given row %d: %w", r, err)
		}
		for c, sym := range symbols {
			if sym == g.placeholder {
				continue
			}
			if _, ok := g.index[sym]; !ok {
				return fmt.Errorf("%w: given row %d holds %q, not in the alphabet", ErrRuleViolation, r, sym)
			}
			if err := g.apply(Move{Row: r, Col: c, Symbol: sym}, autosolve); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseRow accepts the two forms String emits and WithGivens documents:
// exactly size runes, or exactly size whitespace-separated one-rune fields.
func (g *Grid) parseRow(row string) ([]rune, error) {
	runes := []rune(row)
	if len(runes) == g.size {
		return runes, nil
	}

	fields := strings.Fields(row)
	if len(fields) != g.size {
		return nil, fmt.Errorf("%w: row %q is neither %d runes nor %d fields", ErrRuleViolation, row, g.size, g.size)
	}
	symbols := make([]rune, g.size)
	for i, field := range fields {
		fr := []rune(field)
		if len(fr) != 1 {
			return nil, fmt.Errorf("%w: field %q in row %q is not a single symbol", ErrRuleViolation, field, row)
		}
		symbols[i] = fr[0]
	}

	return symbols, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// Geometry returns the shared shape tables of this grid.
func (g *Grid) Geometry() *geometry.Geometry { return g.geo }

// Alphabet returns the symbol set in candidate order.
func (g *Grid) Alphabet() string { return string(g.alphabet) }

// Placeholder returns the rune marking unknown cells.
func (g *Grid) Placeholder() rune { return g.placeholder }

// Symbol returns the resolved symbol at (row, col) and true, or zero and
// false while the cell is still open (or the coordinates are off-grid).
func (g *Grid) Symbol(row, col int) (rune, bool) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0, false
	}
	i := row*g.size + col
	if !g.isResolved(i) {
		return 0, false
	}

	return g.alphabet[bits.TrailingZeros64(g.cells[i])], true
}

// Candidates returns the symbols still possible at (row, col), in alphabet
// order. Off-grid coordinates yield nil. The slice is freshly allocated.
func (g *Grid) Candidates(row, col int) []rune {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return nil
	}
	c := g.cells[row*g.size+col]
	out := make([]rune, 0, bits.OnesCount64(c))
	for c != 0 {
		s := bits.TrailingZeros64(c)
		c &^= 1 << uint(s)
		out = append(out, g.alphabet[s])
	}

	return out
}

// Unresolved returns how many cells are still open.
func (g *Grid) Unresolved() int { return g.unresolved }

// Solved reports whether every cell is resolved.
func (g *Grid) Solved() bool { return g.unresolved == 0 }

// Valid reports whether no group holds a symbol twice. The verdict is
// cached and recomputed only after state changes.
func (g *Grid) Valid() bool {
	if g.valid == validUnknown {
		if g.revalidate() {
			g.valid = validYes
		} else {
			g.valid = validNo
		}
	}

	return g.valid == validYes
}

// revalidate scans every group for duplicate resolved symbols.
func (g *Grid) revalidate() bool {
	for _, group := range g.geo.Groups() {
		var seen uint64
		for _, rc := range group {
			i := rc.Row*g.size + rc.Col
			if !g.isResolved(i) {
				continue
			}
			bit := g.cells[i]
			if seen&bit != 0 {
				return false
			}
			seen |= bit
		}
	}

	return true
}

// Clone returns an independent deep copy. The geometry and alphabet tables
// are shared (both read-only); the one-shot move cache is not carried over.
func (g *Grid) Clone() *Grid {
	return &Grid{
		geo:         g.geo,
		size:        g.size,
		alphabet:    g.alphabet,
		index:       g.index,
		placeholder: g.placeholder,
		cells:       slices.Clone(g.cells),
		placed:      slices.Clone(g.placed),
		unresolved:  g.unresolved,
		valid:       g.valid,
	}
}

// String renders the grid one line per row, each cell a three-character
// field: a space, the symbol or placeholder, a space. Every row ends with
// a newline. The rendering is the interoperable dedup contract, so its
// exact bytes are stable.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((3*g.size + 1) * g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			i := r*g.size + c
			sym := g.placeholder
			if g.isResolved(i) {
				sym = g.alphabet[bits.TrailingZeros64(g.cells[i])]
			}
			b.WriteByte(' ')
			b.WriteRune(sym)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Fingerprint returns the canonical state for duplicate detection during
// search: the String rendering. Equal fingerprints mean equal resolved
// layouts; candidate-set differences below the resolved layer are not
// distinguished, which is tolerated (it can only prune, never corrupt).
func (g *Grid) Fingerprint() string { return g.String() }

// Rows returns the compact one-rune-per-cell form of every row, the same
// shape WithGivens accepts.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		b.Reset()
		for c := 0; c < g.size; c++ {
			i := r*g.size + c
			if g.isResolved(i) {
				b.WriteRune(g.alphabet[bits.TrailingZeros64(g.cells[i])])
			} else {
				b.WriteRune(g.placeholder)
			}
		}
		rows[r] = b.String()
	}

	return rows
}

// isResolved reports whether cell i holds exactly one candidate.
func (g *Grid) isResolved(i int) bool {
	return bits.OnesCount64(g.cells[i]) == 1
}
