package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrUnknownRole indicates a Role value outside the defined set.
	ErrUnknownRole = errors.New("gridgraph: unknown role")
	// ErrBadGlyph indicates an unrecognised character in an ASCII layout.
	ErrBadGlyph = errors.New("gridgraph: unrecognised layout glyph")
	// ErrNoPath indicates no route exists between two cells, even through walls.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrInvalidDensity indicates a wall density outside [0,1].
	ErrInvalidDensity = errors.New("gridgraph: density must lie in [0,1]")
	// ErrNeedRandSource indicates a stochastic operation called without an RNG.
	ErrNeedRandSource = errors.New("gridgraph: random source required")
)
