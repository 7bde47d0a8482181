package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func TestCompare_Maze(t *testing.T) {
	g := gridgraph.MustParse(`
		S.#.....
		..#.###.
		..#...#.
		.####.#.
		......#E
	`)
	cmp, err := search.Compare(context.Background(), g, search.WithEndpointsFromRoles())
	require.NoError(t, err)
	assert.True(t, cmp.SameCost())
	assert.Equal(t, search.AlgorithmAStar, cmp.AStar.Algorithm)
	assert.Equal(t, search.AlgorithmDijkstra, cmp.Dijkstra.Algorithm)
	assert.True(t, cmp.AStar.Found())
	assert.LessOrEqual(t, len(cmp.AStar.Visited), len(cmp.Dijkstra.Visited))
}

func TestCompare_Errors(t *testing.T) {
	_, err := search.Compare(context.Background(), nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Compare(context.Background(), gridgraph.MustParse("..."), search.WithEndpointsFromRoles())
	assert.ErrorIs(t, err, search.ErrStartUnset)
}
