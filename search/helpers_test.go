package search

import "github.com/katalvlaran/gridpath/gridgraph"

type cellKey = gridgraph.Cell

func cellAt(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }
