// Package gridgraph defines the cell, role and grid types used by the
// search engine and its collaborators.
package gridgraph

import "fmt"

// Cell identifies a grid cell by its row and column. Cells are plain values:
// two Cells with equal coordinates are the same cell.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role is the externally owned state of a cell.
type Role uint8

const (
	// RoleNone marks an open, unremarkable cell.
	RoleNone Role = iota
	// RoleStart marks the search origin.
	RoleStart
	// RoleEnd marks the search target.
	RoleEnd
	// RoleWall marks an impassable cell, excluded from adjacency.
	RoleWall
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleWall:
		return "wall"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r <= RoleWall
}

// Grid is a fixed rows×cols collection of cells with one Role each.
// It owns no search state. Roles are stored row-major.
type Grid struct {
	rows, cols int
	roles      []Role
}

// offsets lists the 4-connected moves in contract order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
