// Package geometry provides the shared shape layer for placement puzzles:
// the decomposition of a size×size grid into rows, columns, and regions,
// and the derived lookup tables the constraint engine consumes.
//
// What
//
//   - New(size, opts...) returns the memoized *Geometry for a shape.
//   - Groups() enumerates every group in a stable order: all rows top to
//     bottom, then all columns left to right, then all regions in
//     partition order.
//   - Neighborhood(row, col) returns the deduplicated union of the three
//     groups through a cell (the cell itself included).
//   - RegionOf(row, col) maps a cell to its region index, -1 if uncovered.
//   - Boxes(boxRows, boxCols) builds the familiar rectangular-box
//     partitions (Boxes(3, 3) is the standard 9×9 layout).
//
// Why
//
//   - Every group membership question the One Rule raises is answered by
//     precomputed tables, so constraint propagation never re-derives
//     structure in its inner loops.
//   - Geometries are immutable and memoized process-wide by
//     (size, region shape): thousands of search states of one puzzle share
//     a single instance instead of carrying copies.
//
// Custom partitions
//
//	WithRegions accepts any region list, including overlapping groups,
//	partial coverage, or non-contiguous shapes; the package derives tables
//	from whatever it is given and does not validate well-formedness.
//	Callers wanting classical puzzle semantics must supply a true
//	partition. Cells covered twice resolve RegionOf to the last region
//	listing them; cells covered never resolve to -1.
//
// Complexity (N = size)
//
//   - New: O(N²) table construction on a cache miss; key serialization
//     only on a hit.
//   - Groups, Regions, Size: O(1).
//   - RegionOf, Neighborhood: O(1) lookups into precomputed tables.
//
// Usage
//
//	// Standard 9×9 geometry (square default):
//	geo, err := geometry.New(9)
//	if err != nil {
//	    // ErrBadSize or ErrNotSquare
//	}
//	for _, group := range geo.Groups() {
//	    // rows, then columns, then regions
//	}
//
//	// 12×12 with 3×4 boxes:
//	geo, err = geometry.New(12, geometry.WithRegions(geometry.Boxes(3, 4)))
//
// Errors
//
//   - ErrBadSize    if size < 1.
//   - ErrNotSquare  if no regions were supplied and size is not a perfect
//     square, so the default box partition cannot be derived.
//
// Accessors return shared internal tables; treat every returned slice as
// read-only.
package geometry
