package board_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Clicks place the start, then the end, then toggle walls.
func ExampleBoard_Click() {
	b, _ := board.New(3, 4)
	for _, c := range []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		applied, _ := b.Click(c)
		fmt.Println(applied, c)
	}
	fmt.Print(b.Grid())

	res, _ := b.RunAStar(context.Background())
	fmt.Println(res.Outcome, res.Cost)
	// Output:
	// place start (0,0)
	// place end (2,3)
	// paint walls (1,1)
	// paint walls (1,2)
	// S...
	// .##.
	// ...E
	// succeeded 5
}
