// File: geometry/example_test.go
package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/gridlock/geometry"
)

// ExampleNew demonstrates the square default: a 9×9 grid decomposes into
// nine rows, nine columns, and nine 3×3 boxes.
func ExampleNew() {
	geo, err := geometry.New(9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("size:", geo.Size())
	fmt.Println("groups:", len(geo.Groups()))
	fmt.Println("region of (4,4):", geo.RegionOf(4, 4))

	// Output:
	// size: 9
	// groups: 27
	// region of (4,4): 4
}

// ExampleGeometry_Neighborhood shows the deduplicated union of the three
// groups through a corner cell of a 4×4 grid: its row, the rest of its
// column, and the one region cell not already seen.
func ExampleGeometry_Neighborhood() {
	geo, _ := geometry.New(4)

	fmt.Printf("neighborhood of (0,0):")
	for _, rc := range geo.Neighborhood(0, 0) {
		fmt.Printf(" (%d,%d)", rc.Row, rc.Col)
	}
	fmt.Println()

	// Output:
	// neighborhood of (0,0): (0,0) (0,1) (0,2) (0,3) (1,0) (2,0) (3,0) (1,1)
}

// ExampleBoxes builds the 3×4 box partition used by 12×12 puzzles, where the
// grid dimension is not a perfect square.
func ExampleBoxes() {
	boxes := geometry.Boxes(3, 4)

	fmt.Println("regions:", len(boxes))
	fmt.Println("cells per region:", len(boxes[0]))
	fmt.Printf("second box starts at (%d,%d)\n", boxes[1][0].Row, boxes[1][0].Col)

	// Output:
	// regions: 12
	// cells per region: 12
	// second box starts at (0,4)
}
