// Package search_test provides runnable examples for the search engine.
package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

// ExampleAStar runs A* on a small grid and prints the settlement order and
// the reported path cells.
func ExampleAStar() {
	g := gridgraph.MustParse(`
		S.#.
		..#.
		....
		#..E
	`)
	rec := stepper.NewRecorder(stepper.Immediate())
	res, err := search.AStar(g, rec, search.WithEndpointsFromRoles())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Outcome, res.Cost)
	fmt.Println("visited:", rec.Visits())
	fmt.Println("path:   ", res.Path)
	fmt.Println("marked: ", rec.Path())
	// Output:
	// succeeded 6
	// visited: [(0,0) (1,0) (0,1) (2,0) (1,1) (2,1) (3,1) (2,2) (3,2) (2,3)]
	// path:    [(0,0) (1,0) (2,0) (2,1) (3,1) (3,2) (3,3)]
	// marked:  [(3,2) (3,1) (2,1) (2,0) (1,0)]
}

// ExampleDijkstra shows that uniform-cost search reaches the same cost as A*
// but settles more cells on an open board.
func ExampleDijkstra() {
	g := gridgraph.MustParse(`
		S...E
		.....
		.....
	`)
	a, _ := search.AStar(g, nil, search.WithEndpointsFromRoles())
	d, _ := search.Dijkstra(g, nil, search.WithEndpointsFromRoles())
	fmt.Printf("astar:    cost=%d settled=%d\n", a.Cost, len(a.Visited))
	fmt.Printf("dijkstra: cost=%d settled=%d\n", d.Cost, len(d.Visited))
	// Output:
	// astar:    cost=4 settled=4
	// dijkstra: cost=4 settled=11
}

// ExampleRun_exhausted shows that an unreachable end is a normal outcome.
func ExampleRun_exhausted() {
	g := gridgraph.MustParse(`
		S..
		###
		..E
	`)
	res, err := search.Run(search.AlgorithmDijkstra, g, nil, search.WithEndpointsFromRoles())
	fmt.Println(res.Outcome, err)
	// Output:
	// exhausted <nil>
}

// ExampleCompare runs both algorithms side by side.
func ExampleCompare() {
	g := gridgraph.MustParse(`
		S.#..
		..#..
		....E
	`)
	cmp, err := search.Compare(context.Background(), g, search.WithEndpointsFromRoles())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cmp.AStar.Cost, cmp.Dijkstra.Cost, cmp.SameCost())
	// Output:
	// 6 6 true
}
