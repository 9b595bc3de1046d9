// Package geometry precomputes the group structure of placement-puzzle
// grids: which cells form rows, columns and regions, and which cells
// constrain one another under the One Rule.
package geometry

import (
	"fmt"
	"math"
	"slices"
)

// Geometry describes one puzzle shape. It is immutable once built and is
// shared by every grid of that shape; accessors return internal tables that
// callers must treat as read-only.
type Geometry struct {
	size      int
	regions   []Group
	groups    []Group   // rows, then columns, then regions
	regionIdx []int     // row-major cell index → region number, -1 if uncovered
	hoods     [][]Coord // row-major cell index → deduplicated combined neighborhood
}

// New returns the Geometry for a size×size grid, memoized process-wide by
// (size, region shape): repeated calls with an equal shape return the same
// shared instance.
//
// Without WithRegions the regions are the default square boxes, requiring
// size to be a perfect square. Returns ErrBadSize for size < 1 and
// ErrNotSquare when the square default cannot be derived.
// Complexity: O(size²) on a cache miss, O(size²) key work on a hit.
func New(size int, opts ...Option) (*Geometry, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	regions := o.Regions
	if regions == nil {
		side := isqrt(size)
		if side*side != size {
			return nil, fmt.Errorf("%w: size %d", ErrNotSquare, size)
		}
		regions = Boxes(side, side)
	}

	key := cacheKey(size, regions)
	if g, ok := lookup(key); ok {
		return g, nil
	}

	return store(key, build(size, regions)), nil
}

// Boxes returns the rectangular region partition for a grid of size
// boxRows×boxCols: the grid divides into boxes boxRows cells tall and
// boxCols cells wide, numbered left to right, top to bottom. Boxes(3, 3)
// is the standard 9×9 layout; Boxes(3, 4) the common 12×12 one. Returns
// nil when either dimension is below 1.
func Boxes(boxRows, boxCols int) []Group {
	if boxRows < 1 || boxCols < 1 {
		return nil
	}
	size := boxRows * boxCols
	regions := make([]Group, 0, size)
	for top := 0; top < size; top += boxRows {
		for left := 0; left < size; left += boxCols {
			box := make(Group, 0, size)
			for r := top; r < top+boxRows; r++ {
				for c := left; c < left+boxCols; c++ {
					box = append(box, Coord{Row: r, Col: c})
				}
			}
			regions = append(regions, box)
		}
	}

	return regions
}

// Size returns the grid dimension N.
func (g *Geometry) Size() int { return g.size }

// Groups returns every group of the grid in a stable order: all rows top to
// bottom, then all columns left to right, then all regions in partition
// order. The result is the shared internal table; treat it as read-only.
func (g *Geometry) Groups() []Group { return g.groups }

// Regions returns the region partition in partition order. The result is
// the shared internal table; treat it as read-only.
func (g *Geometry) Regions() []Group { return g.regions }

// RegionOf returns the index of the region containing (row, col), or -1
// when no region covers the cell (out-of-range coordinates, or a malformed
// custom partition). Complexity: O(1) after construction.
func (g *Geometry) RegionOf(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return -1
	}

	return g.regionIdx[row*g.size+col]
}

// Neighborhood returns the deduplicated union of the row, column and region
// groups through (row, col). The cell itself is included; callers exclude
// it where needed. Returns nil for out-of-range coordinates. The result is
// the shared internal table; treat it as read-only.
func (g *Geometry) Neighborhood(row, col int) []Coord {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return nil
	}

	return g.hoods[row*g.size+col]
}

// build derives every table of a Geometry. The partition is deep-copied so
// later caller mutation cannot reach the shared instance.
func build(size int, regions []Group) *Geometry {
	owned := make([]Group, len(regions))
	for i, region := range regions {
		owned[i] = slices.Clone(region)
	}

	g := &Geometry{size: size, regions: owned}

	g.groups = make([]Group, 0, 3*size)
	for r := 0; r < size; r++ {
		row := make(Group, size)
		for c := 0; c < size; c++ {
			row[c] = Coord{Row: r, Col: c}
		}
		g.groups = append(g.groups, row)
	}
	for c := 0; c < size; c++ {
		col := make(Group, size)
		for r := 0; r < size; r++ {
			col[r] = Coord{Row: r, Col: c}
		}
		g.groups = append(g.groups, col)
	}
	g.groups = append(g.groups, owned...)

	g.regionIdx = make([]int, size*size)
	for i := range g.regionIdx {
		g.regionIdx[i] = -1
	}
	for nth, region := range owned {
		for _, rc := range region {
			if rc.Row >= 0 && rc.Row < size && rc.Col >= 0 && rc.Col < size {
				g.regionIdx[rc.Row*size+rc.Col] = nth
			}
		}
	}

	g.hoods = make([][]Coord, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.hoods[r*size+c] = g.combined(r, c)
		}
	}

	return g
}

// combined unions the three groups through (row, col), keeping first
// occurrence order.
func (g *Geometry) combined(row, col int) []Coord {
	parts := []Group{g.groups[row], g.groups[g.size+col]}
	if rgn := g.regionIdx[row*g.size+col]; rgn >= 0 {
		parts = append(parts, g.regions[rgn])
	}

	seen := make(map[Coord]struct{}, 3*g.size)
	hood := make([]Coord, 0, 3*g.size)
	for _, grp := range parts {
		for _, rc := range grp {
			if _, dup := seen[rc]; dup {
				continue
			}
			seen[rc] = struct{}{}
			hood = append(hood, rc)
		}
	}

	return hood
}

// isqrt returns the integer square root of n, exact for all non-negative n.
func isqrt(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s > 0 && s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}

	return s
}
