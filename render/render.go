// Package render draws board views as text.
//
// Plain output uses one glyph per cell and matches the gridgraph text
// format for roles, so a plain render of an unsearched board can be parsed
// back with gridgraph.Parse. Styled output colours the same glyphs with
// lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Overlay glyphs. Role glyphs come from gridgraph.
const (
	GlyphPath    = '*'
	GlyphVisited = 'o'
)

// Glyph picks the character for a cell. Roles other than RoleNone win over
// markers, and a path marker wins over visited.
func Glyph(r gridgraph.Role, m board.Marker) byte {
	if r != gridgraph.RoleNone {
		return gridgraph.RoleGlyph(r)
	}
	switch m {
	case board.MarkerPath:
		return GlyphPath
	case board.MarkerVisited:
		return GlyphVisited
	default:
		return gridgraph.GlyphOpen
	}
}

// Plain renders v one row per line, each line newline-terminated.
func Plain(v board.View) string {
	var sb strings.Builder
	sb.Grow(v.Rows * (v.Cols + 1))
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < v.Cols; c++ {
			sb.WriteByte(Glyph(v.At(gridgraph.Cell{Row: r, Col: c})))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Summary describes a finished run in one line.
func Summary(res *search.Result) string {
	if res == nil {
		return "no run"
	}
	switch res.Outcome {
	case search.OutcomeSucceeded:
		return fmt.Sprintf("%s: path found, cost %d, %d cells settled", res.Algorithm, res.Cost, len(res.Visited))
	case search.OutcomeExhausted:
		return fmt.Sprintf("%s: no path, %d cells settled", res.Algorithm, len(res.Visited))
	default:
		return fmt.Sprintf("%s: %s after %d cells", res.Algorithm, res.Outcome, len(res.Visited))
	}
}
