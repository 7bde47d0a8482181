// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed up, down, left, right order and how
// walls and borders are skipped.
func ExampleGrid_Neighbors() {
	g := gridgraph.MustParse(`
		.#.
		.S.
		...
	`)
	start, _ := g.Start()
	fmt.Println(g.Neighbors(start))
	// Output:
	// [(2,1) (1,0) (1,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: FewestWalls
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_FewestWalls counts the walls that separate start from end.
func ExampleGrid_FewestWalls() {
	g := gridgraph.MustParse(`
		S.#..
		..#..
		###.E
	`)
	start, _ := g.Start()
	end, _ := g.End()
	fmt.Println("connected:", g.Connected(start, end))
	_, walls, _ := g.FewestWalls(start, end)
	fmt.Println("walls to remove:", walls)
	// Output:
	// connected: false
	// walls to remove: 1
}
