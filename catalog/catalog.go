// Package catalog ships named puzzle definitions and a strict YAML loader
// for user-supplied puzzle sets.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridlock/geometry"
	"github.com/katalvlaran/gridlock/grid"
)

// Sentinel errors for catalog loading and validation.
var (
	// ErrPuzzle indicates a structurally invalid puzzle definition; the
	// wrapped message names the offending puzzle.
	ErrPuzzle = errors.New("catalog: invalid puzzle")

	// ErrNoPuzzles indicates a catalog document with no puzzle entries.
	ErrNoPuzzles = errors.New("catalog: no puzzles defined")
)

// Puzzle is one named puzzle definition, either builtin or decoded from a
// YAML catalog. Zero-valued fields fall back to the grid defaults (9×9,
// alphabet "123456789", placeholder '.').
type Puzzle struct {
	// Name identifies the puzzle; required and unique within a catalog.
	Name string `yaml:"name"`

	// Size is the grid dimension N. Zero infers N from the box dimensions,
	// the region mask, or the given rows, in that order, defaulting to 9.
	Size int `yaml:"size,omitempty"`

	// Alphabet lists the N placeable symbols. Empty selects the grid
	// default for the effective size.
	Alphabet string `yaml:"alphabet,omitempty"`

	// Placeholder is the single character standing for an empty cell in
	// Givens and Solution rows. Empty selects '.'.
	Placeholder string `yaml:"placeholder,omitempty"`

	// BoxRows and BoxCols select a rectangular box partition, as in the
	// 12×12 case with 3×4 boxes. Mutually exclusive with Regions.
	BoxRows int `yaml:"box_rows,omitempty"`
	BoxCols int `yaml:"box_cols,omitempty"`

	// Regions is a free-form partition mask: N rows of N labels, cells
	// sharing a label share a region. Regions are numbered by first
	// appearance in row-major order.
	Regions []string `yaml:"regions,omitempty"`

	// Givens holds the initial clue rows. Empty means an empty grid.
	Givens []string `yaml:"givens,omitempty"`

	// Solution optionally records the known completed grid, used by the
	// bench command to verify search results.
	Solution []string `yaml:"solution,omitempty"`

	// Repeats is the bench repetition count for this puzzle; zero means
	// the bench default.
	Repeats int `yaml:"repeats,omitempty"`
}

// Grid constructs the puzzle's constraint grid. Extra options append after
// the puzzle's own, so callers can override behavior (for example
// grid.WithAutosolve(false)).
func (p Puzzle) Grid(opts ...grid.Option) (*grid.Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	base := make([]grid.Option, 0, 5+len(opts))
	if n := p.effectiveSize(); n != 9 || p.Size > 0 {
		base = append(base, grid.WithSize(n))
	}
	switch {
	case len(p.Regions) > 0:
		groups, err := p.regionGroups()
		if err != nil {
			return nil, err
		}
		base = append(base, grid.WithRegions(groups))
	case p.BoxRows > 0:
		base = append(base, grid.WithRegions(geometry.Boxes(p.BoxRows, p.BoxCols)))
	}
	if p.Alphabet != "" {
		base = append(base, grid.WithAlphabet(p.Alphabet))
	}
	if p.Placeholder != "" {
		base = append(base, grid.WithPlaceholder([]rune(p.Placeholder)[0]))
	}
	if len(p.Givens) > 0 {
		base = append(base, grid.WithGivens(p.Givens...))
	}

	return grid.New(append(base, opts...)...)
}

// Reference returns a copy of the known solution, or nil when the puzzle
// does not record one.
func (p Puzzle) Reference() []string {
	return slices.Clone(p.Solution)
}

// effectiveSize resolves the grid dimension from whichever fields are set.
func (p Puzzle) effectiveSize() int {
	switch {
	case p.Size > 0:
		return p.Size
	case p.BoxRows > 0 && p.BoxCols > 0:
		return p.BoxRows * p.BoxCols
	case len(p.Regions) > 0:
		return len(p.Regions)
	case len(p.Givens) > 0:
		return len(p.Givens)
	default:
		return 9
	}
}

// validate checks the catalog-level shape of the definition. Rule-level
// problems (contradictory givens, bad symbols) surface later from grid.New.
func (p Puzzle) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrPuzzle)
	}
	if n := len([]rune(p.Placeholder)); n > 1 {
		return fmt.Errorf("%w %q: placeholder must be a single character", ErrPuzzle, p.Name)
	}
	if len(p.Regions) > 0 && (p.BoxRows > 0 || p.BoxCols > 0) {
		return fmt.Errorf("%w %q: regions and box dimensions are mutually exclusive", ErrPuzzle, p.Name)
	}
	if (p.BoxRows > 0) != (p.BoxCols > 0) {
		return fmt.Errorf("%w %q: box_rows and box_cols must be set together", ErrPuzzle, p.Name)
	}
	size := p.effectiveSize()
	if p.BoxRows > 0 && p.BoxRows*p.BoxCols != size {
		return fmt.Errorf("%w %q: %d×%d boxes cannot tile a size-%d grid",
			ErrPuzzle, p.Name, p.BoxRows, p.BoxCols, size)
	}
	if len(p.Regions) > 0 {
		if _, err := p.regionGroups(); err != nil {
			return err
		}
	}
	if len(p.Givens) > 0 && len(p.Givens) != size {
		return fmt.Errorf("%w %q: %d given rows, want %d", ErrPuzzle, p.Name, len(p.Givens), size)
	}
	if len(p.Solution) > 0 && len(p.Solution) != size {
		return fmt.Errorf("%w %q: %d solution rows, want %d", ErrPuzzle, p.Name, len(p.Solution), size)
	}
	if p.Repeats < 0 {
		return fmt.Errorf("%w %q: repeats must not be negative", ErrPuzzle, p.Name)
	}

	return nil
}

// regionGroups decodes the region mask into geometry groups, numbering
// regions by first appearance in row-major order.
func (p Puzzle) regionGroups() ([]geometry.Group, error) {
	size := p.effectiveSize()
	if len(p.Regions) != size {
		return nil, fmt.Errorf("%w %q: region mask has %d rows, want %d",
			ErrPuzzle, p.Name, len(p.Regions), size)
	}

	index := make(map[rune]int, size)
	groups := make([]geometry.Group, 0, size)
	for r, row := range p.Regions {
		labels := []rune(row)
		if len(labels) != size {
			return nil, fmt.Errorf("%w %q: region mask row %d has %d cells, want %d",
				ErrPuzzle, p.Name, r, len(labels), size)
		}
		for c, label := range labels {
			i, ok := index[label]
			if !ok {
				i = len(groups)
				index[label] = i
				groups = append(groups, geometry.Group{})
			}
			groups[i] = append(groups[i], geometry.Coord{Row: r, Col: c})
		}
	}

	return groups, nil
}

// Get looks a puzzle up in the builtin set by name.
func Get(name string) (Puzzle, bool) {
	for _, p := range Builtin() {
		if p.Name == name {
			return p, true
		}
	}

	return Puzzle{}, false
}

// Load decodes a YAML catalog document of the form
//
//	puzzles:
//	  - name: my-puzzle
//	    givens: [...]
//
// Decoding is strict: unknown fields are rejected. Every puzzle is
// validated and names must be unique.
func Load(r io.Reader) ([]Puzzle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc struct {
		Puzzles []Puzzle `yaml:"puzzles"`
	}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPuzzles
		}

		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if len(doc.Puzzles) == 0 {
		return nil, ErrNoPuzzles
	}

	seen := make(map[string]struct{}, len(doc.Puzzles))
	for _, p := range doc.Puzzles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w %q: duplicate name", ErrPuzzle, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return doc.Puzzles, nil
}

// LoadFile reads and decodes the YAML catalog at path.
func LoadFile(path string) ([]Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}
