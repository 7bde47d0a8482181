package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

var (
	// ErrBusy is returned by Board.Run while another run holds the board.
	ErrBusy = errors.New("board: a search is already running")

	// ErrUnboundKey is returned by Session.HandleKey for keys with no action.
	ErrUnboundKey = errors.New("board: key not bound")
)

// Marker is the search overlay painted on a cell.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerVisited
	MarkerPath
)

// String returns the lower-case marker name.
func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "none"
	case MarkerVisited:
		return "visited"
	case MarkerPath:
		return "path"
	default:
		return fmt.Sprintf("marker(%d)", uint8(m))
	}
}

// Phase is the click-placement stage, derived from which roles exist.
type Phase uint8

const (
	// PhaseAwaitingStart: the next click places the start cell.
	PhaseAwaitingStart Phase = iota
	// PhaseAwaitingEnd: the next click places the end cell.
	PhaseAwaitingEnd
	// PhasePaintingWalls: clicks toggle walls.
	PhasePaintingWalls
)

// String returns a short phase description.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "place start"
	case PhaseAwaitingEnd:
		return "place end"
	case PhasePaintingWalls:
		return "paint walls"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Key bindings understood by Session.HandleKey.
const (
	KeyAStar    = 'a'
	KeyDijkstra = 'd'
	KeyReset    = 'r'
	KeyClear    = 'c'
)

// View is an immutable copy of a board for rendering.
type View struct {
	Rows, Cols int
	Roles      []gridgraph.Role
	Markers    []Marker
	Phase      Phase
	State      search.State
}

// At returns the role and marker of c. Out-of-bounds cells report zero values.
func (v View) At(c gridgraph.Cell) (gridgraph.Role, Marker) {
	if c.Row < 0 || c.Row >= v.Rows || c.Col < 0 || c.Col >= v.Cols {
		return gridgraph.RoleNone, MarkerNone
	}
	i := c.Row*v.Cols + c.Col

	return v.Roles[i], v.Markers[i]
}

// Count returns how many cells carry marker m.
func (v View) Count(m Marker) int {
	n := 0
	for _, have := range v.Markers {
		if have == m {
			n++
		}
	}

	return n
}

// Options configures a Board.
type Options struct {
	Pacer    stepper.Pacer
	Logger   *slog.Logger
	OnChange func()
}

// Option represents a functional option for configuring a Board.
type Option func(*Options)

// WithPacer sets the pacing between search steps. Defaults to Immediate.
func WithPacer(p stepper.Pacer) Option {
	return func(o *Options) {
		if p != nil {
			o.Pacer = p
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnChange registers a callback invoked after every visible change:
// role edits, resets and each marker painted by a run. It is called without
// board locks held and may read the board.
func WithOnChange(fn func()) Option {
	return func(o *Options) {
		o.OnChange = fn
	}
}

// DefaultOptions returns immediate pacing, a discarding logger and no
// change callback.
func DefaultOptions() Options {
	return Options{
		Pacer:    stepper.Immediate(),
		Logger:   slog.New(slog.DiscardHandler),
		OnChange: func() {},
	}
}
