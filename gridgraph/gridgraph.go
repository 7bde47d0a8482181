// Package gridgraph exposes grid topology as a pure query surface: bounds,
// wall membership, 4-directional adjacency and the Manhattan heuristic.
package gridgraph

import "fmt"

// NewGrid constructs an empty rows×cols Grid with every cell set to RoleNone.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		roles: make([]Role, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for cells that are not InBounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Role returns the role of c, or RoleNone when c is out of bounds.
func (g *Grid) Role(c Cell) Role {
	if !g.InBounds(c) {
		return RoleNone
	}

	return g.roles[g.Index(c)]
}

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Cell) bool {
	return g.Role(c) == RoleWall
}

// SetRole assigns r to c. Uniqueness of the start and end cells is the
// caller's responsibility; SetRole does not clear previous holders.
// Returns ErrOutOfBounds or ErrUnknownRole for invalid input.
func (g *Grid) SetRole(c Cell, r Role) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownRole, uint8(r))
	}
	g.roles[g.Index(c)] = r

	return nil
}

// Start returns the first cell in row-major order with RoleStart.
func (g *Grid) Start() (Cell, bool) {
	return g.find(RoleStart)
}

// End returns the first cell in row-major order with RoleEnd.
func (g *Grid) End() (Cell, bool) {
	return g.find(RoleEnd)
}

func (g *Grid) find(r Role) (Cell, bool) {
	for i, have := range g.roles {
		if have == r {
			return g.Coordinate(i), true
		}
	}

	return Cell{}, false
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Cell {
	var walls []Cell
	for i, r := range g.roles {
		if r == RoleWall {
			walls = append(walls, g.Coordinate(i))
		}
	}

	return walls
}

// Neighbors returns the in-bounds, non-wall cells orthogonally adjacent to c,
// always in the order up, down, left, right. Frontier tie-breaking depends
// on this order, so it must not change.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) || g.roles[g.Index(n)] == RoleWall {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact unobstructed
// distance on a 4-connected unit-cost grid.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Snapshot returns a deep copy of g. Edits to either grid are not visible
// through the other.
// Complexity: O(R×C).
func (g *Grid) Snapshot() *Grid {
	roles := make([]Role, len(g.roles))
	copy(roles, g.roles)

	return &Grid{rows: g.rows, cols: g.cols, roles: roles}
}

// ClearRole resets every cell holding r to RoleNone.
func (g *Grid) ClearRole(r Role) {
	for i, have := range g.roles {
		if have == r {
			g.roles[i] = RoleNone
		}
	}
}
