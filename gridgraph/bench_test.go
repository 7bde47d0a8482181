package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds an n×n grid with roughly a quarter of the cells walled.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewGrid(n, n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				_ = g.SetRole(gridgraph.Cell{Row: r, Col: c}, gridgraph.RoleWall)
			}
		}
	}

	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkFewestWalls measures FewestWalls corner to corner on a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkFewestWalls(b *testing.B) {
	g := randomGrid(b, 500)
	from, to := gridgraph.Cell{}, gridgraph.Cell{Row: 499, Col: 499}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.FewestWalls(from, to)
	}
}

// BenchmarkNeighbors measures the adjacency query on an interior cell.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(b, 64)
	c := gridgraph.Cell{Row: 32, Col: 32}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c)
	}
}
