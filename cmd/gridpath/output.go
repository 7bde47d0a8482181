package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func printResult(w io.Writer, res *search.Result) {
	fmt.Fprintln(w, render.Summary(res))
	if res.Found() {
		fmt.Fprintln(w, "route:", res.Path)
	}
}

func printCompare(w io.Writer, cmp *search.Comparison) {
	for _, res := range []*search.Result{cmp.AStar, cmp.Dijkstra} {
		fmt.Fprintln(w, render.Summary(res))
	}
	if cmp.AStar.Found() && cmp.Dijkstra.Found() {
		fmt.Fprintf(w, "same cost: %t, A* settled %d fewer cells\n",
			cmp.SameCost(), len(cmp.Dijkstra.Visited)-len(cmp.AStar.Visited))
	}
}

// printFewestWalls explains an exhausted search by how many walls stand
// between the endpoints and how many open regions the walls carve out.
func printFewestWalls(w io.Writer, g *gridgraph.Grid, res *search.Result) {
	if g.Connected(res.Start, res.End) {
		return
	}
	_, walls, err := g.FewestWalls(res.Start, res.End)
	if err != nil {
		return
	}
	noun := "walls"
	if walls == 1 {
		noun = "wall"
	}
	fmt.Fprintf(w, "removing %d %s would connect %s and %s\n", walls, noun, res.Start, res.End)
	fmt.Fprintf(w, "walls split the board into %d open regions\n", len(g.ConnectedComponents()))
}
