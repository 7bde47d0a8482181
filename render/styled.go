package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Palette.
var (
	ColorStart   = lipgloss.Color("#2CD7C7")
	ColorEnd     = lipgloss.Color("#E74C3C")
	ColorWall    = lipgloss.Color("#2C4A54")
	ColorPath    = lipgloss.Color("#F4D03F")
	ColorVisited = lipgloss.Color("#1D9EA3")
	ColorEmpty   = lipgloss.Color("241")
)

// Theme holds one style per glyph plus the cursor highlight.
type Theme struct {
	Start   lipgloss.Style
	End     lipgloss.Style
	Wall    lipgloss.Style
	Path    lipgloss.Style
	Visited lipgloss.Style
	Empty   lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
}

// NewTheme builds the default palette on renderer r. The renderer decides
// the colour profile, so a renderer over a non-terminal writer yields
// uncoloured output.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Start:   r.NewStyle().Foreground(ColorStart).Bold(true),
		End:     r.NewStyle().Foreground(ColorEnd).Bold(true),
		Wall:    r.NewStyle().Foreground(ColorWall),
		Path:    r.NewStyle().Foreground(ColorPath).Bold(true),
		Visited: r.NewStyle().Foreground(ColorVisited),
		Empty:   r.NewStyle().Foreground(ColorEmpty),
		Cursor:  r.NewStyle().Reverse(true),
		Status:  r.NewStyle().Foreground(ColorEmpty).Italic(true),
	}
}

// DefaultTheme is NewTheme on lipgloss's default renderer.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

func (t Theme) styleFor(glyph byte) lipgloss.Style {
	switch glyph {
	case gridgraph.GlyphStart:
		return t.Start
	case gridgraph.GlyphEnd:
		return t.End
	case gridgraph.GlyphWall:
		return t.Wall
	case GlyphPath:
		return t.Path
	case GlyphVisited:
		return t.Visited
	default:
		return t.Empty
	}
}

// Styled renders v with theme t, cells separated by one space.
func Styled(v board.View, t Theme) string {
	return styled(v, t, nil)
}

// StyledCursor is Styled with the cell at cursor highlighted.
func StyledCursor(v board.View, t Theme, cursor gridgraph.Cell) string {
	return styled(v, t, &cursor)
}

func styled(v board.View, t Theme, cursor *gridgraph.Cell) string {
	var sb strings.Builder
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < v.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			at := gridgraph.Cell{Row: r, Col: c}
			glyph := Glyph(v.At(at))
			style := t.styleFor(glyph)
			if cursor != nil && *cursor == at {
				style = style.Inherit(t.Cursor)
			}
			sb.WriteString(style.Render(string(glyph)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
