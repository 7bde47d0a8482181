package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid, InBounds and SetRole Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrEmptyGrid) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrEmptyGrid", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%s)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%s)=true; want false", c)
		}
	}
}

// TestSetRole_Errors verifies bounds and role validation.
func TestSetRole_Errors(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	if err := g.SetRole(gridgraph.Cell{Row: 2, Col: 0}, gridgraph.RoleWall); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("SetRole out of bounds error = %v; want ErrOutOfBounds", err)
	}
	if err := g.SetRole(gridgraph.Cell{}, gridgraph.Role(42)); !errors.Is(err, gridgraph.ErrUnknownRole) {
		t.Errorf("SetRole bad role error = %v; want ErrUnknownRole", err)
	}
}

// TestStartEnd finds the start and end cells after assignment.
func TestStartEnd(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 3)
	if _, ok := g.Start(); ok {
		t.Fatal("empty grid reports a start cell")
	}
	_ = g.SetRole(gridgraph.Cell{Row: 1, Col: 2}, gridgraph.RoleStart)
	_ = g.SetRole(gridgraph.Cell{Row: 2, Col: 0}, gridgraph.RoleEnd)

	s, ok := g.Start()
	if !ok || s != (gridgraph.Cell{Row: 1, Col: 2}) {
		t.Errorf("Start() = %v,%v; want (1,2),true", s, ok)
	}
	e, ok := g.End()
	if !ok || e != (gridgraph.Cell{Row: 2, Col: 0}) {
		t.Errorf("End() = %v,%v; want (2,0),true", e, ok)
	}

	g.ClearRole(gridgraph.RoleStart)
	if _, ok := g.Start(); ok {
		t.Error("ClearRole(RoleStart) left a start cell behind")
	}
}

//----------------------------------------------------------------------------//
// Neighbors and Manhattan Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the up, down, left, right contract.
func TestNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.NewGrid(3, 3)
	got := g.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_BoundsAndWalls drops out-of-range and wall cells.
func TestNeighbors_BoundsAndWalls(t *testing.T) {
	g := gridgraph.MustParse(`
		S#.
		...
	`)
	got := g.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	want := []gridgraph.Cell{{1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}

	got = g.Neighbors(gridgraph.Cell{Row: 1, Col: 2})
	want = []gridgraph.Cell{{0, 2}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,2) = %v; want %v", got, want)
	}
}

// TestManhattan checks symmetry and a few known distances.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b gridgraph.Cell
		want int
	}{
		{gridgraph.Cell{0, 0}, gridgraph.Cell{0, 0}, 0},
		{gridgraph.Cell{0, 0}, gridgraph.Cell{2, 2}, 4},
		{gridgraph.Cell{3, 1}, gridgraph.Cell{0, 5}, 7},
	}
	for _, tc := range cases {
		if got := gridgraph.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%s,%s) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
		if got := gridgraph.Manhattan(tc.b, tc.a); got != tc.want {
			t.Errorf("Manhattan(%s,%s) = %d; want %d", tc.b, tc.a, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Snapshot and Layout Tests
//----------------------------------------------------------------------------//

// TestSnapshot_Isolated ensures edits after Snapshot do not leak either way.
func TestSnapshot_Isolated(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	snap := g.Snapshot()
	_ = g.SetRole(gridgraph.Cell{Row: 0, Col: 1}, gridgraph.RoleWall)
	if snap.IsWall(gridgraph.Cell{Row: 0, Col: 1}) {
		t.Error("snapshot observed a wall added to the original")
	}
	_ = snap.SetRole(gridgraph.Cell{Row: 1, Col: 1}, gridgraph.RoleEnd)
	if g.Role(gridgraph.Cell{Row: 1, Col: 1}) != gridgraph.RoleNone {
		t.Error("original observed a role set on the snapshot")
	}
}

// TestParse_Errors covers malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "   \n  ", gridgraph.ErrEmptyGrid},
		{"Ragged", "..\n.", gridgraph.ErrNonRectangular},
		{"Glyph", ".x.", gridgraph.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.layout)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.layout, err, tc.err)
			}
		})
	}
}

// TestParse_StringRoundTrip checks that String reproduces the parsed layout.
func TestParse_StringRoundTrip(t *testing.T) {
	layout := "S..#\n.##.\n...E\n"
	g, err := gridgraph.Parse(layout)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("dims = %dx%d; want 3x4", g.Rows(), g.Cols())
	}
	if got := g.String(); got != layout {
		t.Errorf("String() = %q; want %q", got, layout)
	}
	want := []gridgraph.Cell{{0, 3}, {1, 1}, {1, 2}}
	if got := g.Walls(); !reflect.DeepEqual(got, want) {
		t.Errorf("Walls() = %v; want %v", got, want)
	}
}
