// Package geometry defines core types, options, and sentinel errors
// for the geometry subpackage of github.com/katalvlaran/gridlock.
package geometry

import "errors"

// Sentinel errors for Geometry construction.
var (
	// ErrBadSize indicates a non-positive grid size.
	ErrBadSize = errors.New("geometry: size must be at least 1")

	// ErrNotSquare indicates the default square region layout was requested
	// for a size that is not a perfect square.
	ErrNotSquare = errors.New("geometry: size has no square region decomposition")
)

// Coord identifies one cell by zero-based row and column, counted from the
// top-left corner of the grid.
type Coord struct {
	Row, Col int
}

// Group is an ordered list of cell coordinates forming one row, one column
// or one region. Every group of an N×N grid holds exactly N coordinates and
// must contain each symbol exactly once in a solved puzzle (the One Rule).
type Group []Coord

// Option configures Geometry construction via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters for Geometry construction.
type Options struct {
	// Regions is a custom partition of the grid into size regions of size
	// cells each. Nil selects the default square box decomposition.
	//
	// Well-formedness is not validated: supplying a list that fails to
	// partition the grid is a caller error and leaves RegionOf reporting -1
	// for uncovered cells.
	Regions []Group
}

// DefaultOptions returns Options selecting the default square region layout.
func DefaultOptions() Options {
	return Options{Regions: nil}
}

// WithRegions selects a custom region partition instead of the square
// default. The partition is deep-copied at construction.
func WithRegions(regions []Group) Option {
	return func(o *Options) {
		if regions != nil {
			o.Regions = regions
		}
	}
}
