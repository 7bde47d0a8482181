package gridgraph

import (
	"fmt"
	"strings"
)

// Layout glyphs used by Parse and String.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Parse builds a Grid from an ASCII layout, one line per row. Blank leading
// and trailing lines and surrounding spaces on each line are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadGlyph.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := NewGrid(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range []byte(line) {
			role, ok := glyphRole(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, c)
			}
			g.roles[g.Index(Cell{Row: r, Col: c})] = role
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}

	return g
}

// String renders g in the layout format accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(RoleGlyph(g.roles[r*g.cols+c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// RoleGlyph returns the layout character for r.
func RoleGlyph(r Role) byte {
	switch r {
	case RoleStart:
		return GlyphStart
	case RoleEnd:
		return GlyphEnd
	case RoleWall:
		return GlyphWall
	default:
		return GlyphOpen
	}
}

func glyphRole(ch byte) (Role, bool) {
	switch ch {
	case GlyphOpen:
		return RoleNone, true
	case GlyphWall:
		return RoleWall, true
	case GlyphStart:
		return RoleStart, true
	case GlyphEnd:
		return RoleEnd, true
	default:
		return RoleNone, false
	}
}
