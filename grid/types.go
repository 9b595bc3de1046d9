// Package grid defines core types, options, and sentinel errors for the
// constraint-grid subpackage of github.com/katalvlaran/gridlock.
package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlock/geometry"
)

// MaxSize is the largest supported grid dimension. Candidate sets are
// machine-word bitsets, one bit per alphabet symbol.
const MaxSize = 64

// DefaultPlaceholder marks an unknown cell in givens and renderings.
const DefaultPlaceholder = '.'

// Sentinel errors for grid construction and mutation.
var (
	// ErrRuleViolation is returned when a move, a given, or a propagation
	// step conflicts with the One Rule: each symbol exactly once per group.
	// Always recoverable; the caller discards the attempted transition.
	ErrRuleViolation = errors.New("grid: rule violation")

	// ErrAlgorithm is returned when an internal consistency check fails
	// after propagation claims a valid fixed point. It signals a defect,
	// not bad puzzle data, and should not be retried.
	ErrAlgorithm = errors.New("grid: internal consistency failure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Move resolves one cell to one symbol. Moves are immutable values; two
// moves are equal iff all three fields match.
type Move struct {
	Row    int
	Col    int
	Symbol rune
}

// String renders the move as symbol@(row,col).
func (m Move) String() string {
	return fmt.Sprintf("%c@(%d,%d)", m.Symbol, m.Row, m.Col)
}

// validity is the tri-state One Rule verdict: unknown forces a group
// rescan on the next Valid call.
type validity int8

const (
	validUnknown validity = iota
	validYes
	validNo
)

// moveCache pairs the move most recently vetted by LegalMoves with the
// already-propagated clone its dry run produced, so the CopyAndMove that
// typically follows is free.
type moveCache struct {
	move Move
	next *Grid
}

// Option configures grid construction via functional arguments.
// If an Option is invalid (e.g. an empty alphabet), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the parameters customizing a new grid.
type Options struct {
	// Size is the grid dimension N; cells hold one of N symbols.
	// Zero selects the default: the supplied geometry's dimension,
	// else 9. A non-zero Size must agree with any supplied geometry.
	Size int

	// Regions is an optional custom partition handed to the geometry
	// layer. Nil selects the default square boxes, which requires Size
	// to be a perfect square.
	Regions []geometry.Group

	// Geometry is an optional prebuilt shape. When set, Size and Regions
	// must be absent or agree with it.
	Geometry *geometry.Geometry

	// Alphabet lists the N symbols, in candidate order. Empty selects
	// the default: digits 1-9 then uppercase letters, covering N ≤ 35.
	Alphabet []rune

	// Placeholder marks unknown cells in givens and renderings.
	Placeholder rune

	// Givens are initial rows, either compact (one rune per cell) or
	// whitespace-separated fields, the same forms String emits.
	Givens []string

	// Autosolve propagates each given as it is placed. Disabled, givens
	// only resolve their own cells; the construction-time One Rule check
	// still runs.
	Autosolve bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard setup:
//   - size 9 unless a geometry supplies its own
//   - default square regions, default alphabet
//   - '.' placeholder
//   - no givens
//   - autosolve enabled.
func DefaultOptions() Options {
	return Options{
		Placeholder: DefaultPlaceholder,
		Autosolve:   true,
	}
}

// WithSize sets the grid dimension N.
//
//	1 ≤ n ≤ MaxSize: valid
//	otherwise: invalid option → ErrOptionViolation
func WithSize(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxSize {
			o.err = fmt.Errorf("%w: size %d outside 1..%d", ErrOptionViolation, n, MaxSize)
			return
		}
		o.Size = n
	}
}

// WithRegions supplies a custom region partition in place of the default
// square boxes. The partition must cover N regions of N cells each for
// classical puzzle semantics; the geometry layer does not verify that.
func WithRegions(regions []geometry.Group) Option {
	return func(o *Options) {
		if regions != nil {
			o.Regions = regions
		}
	}
}

// WithGeometry reuses a prebuilt shape, bypassing geometry construction.
// Combining it with WithRegions is an option violation; combining it with
// a disagreeing WithSize is too.
func WithGeometry(geo *geometry.Geometry) Option {
	return func(o *Options) {
		if geo != nil {
			o.Geometry = geo
		}
	}
}

// WithAlphabet sets the symbol set. The string must decode to exactly N
// distinct runes once the size is known; violations surface from New.
func WithAlphabet(symbols string) Option {
	return func(o *Options) {
		if symbols == "" {
			o.err = fmt.Errorf("%w: empty alphabet", ErrOptionViolation)
			return
		}
		o.Alphabet = []rune(symbols)
	}
}

// WithPlaceholder sets the rune marking unknown cells. It must not be a
// member of the alphabet.
func WithPlaceholder(r rune) Option {
	return func(o *Options) {
		o.Placeholder = r
	}
}

// WithGivens appends initial rows. Multiple uses accumulate, so a puzzle
// can be supplied row by row or as one block.
func WithGivens(rows ...string) Option {
	return func(o *Options) {
		o.Givens = append(o.Givens, rows...)
	}
}

// WithAutosolve toggles propagation of givens during construction.
// Disabled, cells resolve without cascading, leaving neighbor candidate
// sets untouched until the first Apply or CopyAndMove.
func WithAutosolve(enabled bool) Option {
	return func(o *Options) {
		o.Autosolve = enabled
	}
}
