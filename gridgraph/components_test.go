package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Split tests a 3×4 grid cut by a wall column.
//
// Layout:
//
//	..#.
//	..#.
//	..#.
//
// Expected: 2 regions of sizes 6 and 3.
func TestConnectedComponents_Split(t *testing.T) {
	g := MustParse("..#.\n..#.\n..#.")

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{3, 6}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals ensures corner-touching cells stay apart.
//
// Layout:
//
//	.#
//	#.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g := MustParse(".#\n#.")
	if got := len(g.ConnectedComponents()); got != 2 {
		t.Errorf("got %d components; want 2", got)
	}
}

// TestConnectedComponents_AllWalls returns nothing for a solid grid.
func TestConnectedComponents_AllWalls(t *testing.T) {
	g := MustParse("##\n##")
	if comps := g.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

// TestConnected covers reachable, blocked and degenerate pairs.
func TestConnected(t *testing.T) {
	g := MustParse(`
		S.#.
		..#E
	`)
	if g.Connected(Cell{0, 0}, Cell{1, 3}) {
		t.Error("Connected across a wall column = true; want false")
	}
	if !g.Connected(Cell{0, 0}, Cell{1, 1}) {
		t.Error("Connected within open region = false; want true")
	}
	if !g.Connected(Cell{0, 3}, Cell{0, 3}) {
		t.Error("Connected(a,a) on an open cell = false; want true")
	}
	if g.Connected(Cell{0, 2}, Cell{0, 2}) {
		t.Error("Connected on a wall cell = true; want false")
	}
}
