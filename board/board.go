package board

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

// Board is a grid plus the marker overlay painted by searches.
type Board struct {
	mu      sync.RWMutex
	grid    *gridgraph.Grid
	markers []Marker

	// runMu is held for the whole of a run; one run per board.
	runMu   sync.Mutex
	tracker search.Tracker

	pacer    stepper.Pacer
	log      *slog.Logger
	onChange func()
}

// New returns an empty rows×cols board.
// Returns gridgraph.ErrEmptyGrid if either dimension is not positive.
func New(rows, cols int, opts ...Option) (*Board, error) {
	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	return FromGrid(g, opts...), nil
}

// FromGrid returns a board over a copy of g, keeping its roles.
// If g holds several start (or end) cells only the first in row-major order
// is kept.
func FromGrid(g *gridgraph.Grid, opts ...Option) *Board {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.OnChange == nil {
		cfg.OnChange = func() {}
	}

	grid := g.Snapshot()
	if c, ok := grid.Start(); ok {
		grid.ClearRole(gridgraph.RoleStart)
		_ = grid.SetRole(c, gridgraph.RoleStart)
	}
	if c, ok := grid.End(); ok {
		grid.ClearRole(gridgraph.RoleEnd)
		_ = grid.SetRole(c, gridgraph.RoleEnd)
	}

	return &Board{
		grid:     grid,
		markers:  make([]Marker, grid.Rows()*grid.Cols()),
		pacer:    cfg.Pacer,
		log:      cfg.Logger,
		onChange: cfg.OnChange,
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.grid.Rows() }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.grid.Cols() }

// Role returns the role of c, or RoleNone outside the board.
func (b *Board) Role(c gridgraph.Cell) gridgraph.Role {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.grid.Role(c)
}

// Marker returns the overlay marker of c, or MarkerNone outside the board.
func (b *Board) Marker(c gridgraph.Cell) Marker {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.grid.InBounds(c) {
		return MarkerNone
	}

	return b.markers[b.grid.Index(c)]
}

// Grid returns a snapshot of the current roles.
func (b *Board) Grid() *gridgraph.Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.grid.Snapshot()
}

// State reports the state of the most recent run.
func (b *Board) State() search.State { return b.tracker.State() }

// Phase reports which placement step the next Click performs.
func (b *Board) Phase() Phase {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.phase()
}

func (b *Board) phase() Phase {
	if _, ok := b.grid.Start(); !ok {
		return PhaseAwaitingStart
	}
	if _, ok := b.grid.End(); !ok {
		return PhaseAwaitingEnd
	}

	return PhasePaintingWalls
}

// SetRole assigns r to c. Assigning RoleStart or RoleEnd moves that role:
// the previous holder reverts to RoleNone. Any marker on c is cleared.
func (b *Board) SetRole(c gridgraph.Cell, r gridgraph.Role) error {
	b.mu.Lock()
	err := b.setRole(c, r)
	b.mu.Unlock()
	if err != nil {
		return err
	}
	b.onChange()

	return nil
}

func (b *Board) setRole(c gridgraph.Cell, r gridgraph.Role) error {
	if !b.grid.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d board", gridgraph.ErrOutOfBounds, c, b.grid.Rows(), b.grid.Cols())
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %d", gridgraph.ErrUnknownRole, uint8(r))
	}
	if r == gridgraph.RoleStart || r == gridgraph.RoleEnd {
		b.grid.ClearRole(r)
	}
	if err := b.grid.SetRole(c, r); err != nil {
		return err
	}
	b.markers[b.grid.Index(c)] = MarkerNone

	return nil
}

// Click performs the placement step for the current phase:
//
//	AwaitingStart  c becomes the start
//	AwaitingEnd    c becomes the end, unless c is the start
//	PaintingWalls  c toggles between empty and wall; start and end are left alone
//
// It reports the phase that was applied.
func (b *Board) Click(c gridgraph.Cell) (Phase, error) {
	b.mu.Lock()
	if !b.grid.InBounds(c) {
		b.mu.Unlock()
		return 0, fmt.Errorf("%w: %s in %dx%d board", gridgraph.ErrOutOfBounds, c, b.grid.Rows(), b.grid.Cols())
	}

	p := b.phase()
	changed := true
	switch p {
	case PhaseAwaitingStart:
		_ = b.setRole(c, gridgraph.RoleStart)
	case PhaseAwaitingEnd:
		if b.grid.Role(c) == gridgraph.RoleStart {
			changed = false
			break
		}
		_ = b.setRole(c, gridgraph.RoleEnd)
	default:
		switch b.grid.Role(c) {
		case gridgraph.RoleNone:
			_ = b.setRole(c, gridgraph.RoleWall)
		case gridgraph.RoleWall:
			_ = b.setRole(c, gridgraph.RoleNone)
		default:
			changed = false
		}
	}
	b.mu.Unlock()

	if changed {
		b.onChange()
	}

	return p, nil
}

// Reset clears every visited and path marker. Roles are kept.
// Calling Reset on a clean board is a no-op.
func (b *Board) Reset() {
	b.mu.Lock()
	dirty := b.clearMarkers()
	b.mu.Unlock()

	if dirty {
		b.onChange()
	}
}

func (b *Board) clearMarkers() bool {
	dirty := false
	for i, m := range b.markers {
		if m != MarkerNone {
			b.markers[i] = MarkerNone
			dirty = true
		}
	}

	return dirty
}

// Clear removes every role and marker, returning the board to
// PhaseAwaitingStart.
func (b *Board) Clear() {
	b.mu.Lock()
	for _, r := range []gridgraph.Role{gridgraph.RoleStart, gridgraph.RoleEnd, gridgraph.RoleWall} {
		b.grid.ClearRole(r)
	}
	b.clearMarkers()
	b.mu.Unlock()

	b.onChange()
}

// Scatter clears all markers and turns each empty cell into a wall with
// probability density. See gridgraph.Grid.Scatter.
func (b *Board) Scatter(density float64, rng *rand.Rand) (int, error) {
	b.mu.Lock()
	n, err := b.grid.Scatter(density, rng)
	if err == nil {
		b.clearMarkers()
	}
	b.mu.Unlock()
	if err != nil {
		return 0, err
	}
	b.onChange()

	return n, nil
}

// View returns a copy of the board for rendering.
func (b *Board) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rows, cols := b.grid.Rows(), b.grid.Cols()
	v := View{
		Rows:    rows,
		Cols:    cols,
		Roles:   make([]gridgraph.Role, rows*cols),
		Markers: make([]Marker, rows*cols),
		Phase:   b.phase(),
		State:   b.tracker.State(),
	}
	for i := range v.Roles {
		v.Roles[i] = b.grid.Role(b.grid.Coordinate(i))
	}
	copy(v.Markers, b.markers)

	return v
}

// RunAStar resets the board and runs A* between its start and end cells.
func (b *Board) RunAStar(ctx context.Context) (*search.Result, error) {
	return b.Run(ctx, search.AlgorithmAStar)
}

// RunDijkstra resets the board and runs Dijkstra between its start and end cells.
func (b *Board) RunDijkstra(ctx context.Context) (*search.Result, error) {
	return b.Run(ctx, search.AlgorithmDijkstra)
}

// Run clears previous markers and searches the board with alg, painting
// settled cells as MarkerVisited and the final route as MarkerPath. Each
// settled cell is followed by one pacer suspension.
//
// The search works on a snapshot taken after the reset: role edits made
// while it runs are shown but not searched. Returns ErrBusy if another run
// holds the board, and the search package errors otherwise.
func (b *Board) Run(ctx context.Context, alg search.Algorithm) (*search.Result, error) {
	if !b.runMu.TryLock() {
		return nil, ErrBusy
	}
	defer b.runMu.Unlock()

	b.Reset()
	snap := b.Grid()
	if r, ok := b.pacer.(stepper.Restarter); ok {
		r.Restart()
	}

	sink := stepper.Funcs{
		Visit: func(c gridgraph.Cell) { b.paint(c, MarkerVisited) },
		Path:  func(c gridgraph.Cell) { b.paint(c, MarkerPath) },
		Pacer: b.pacer,
	}

	return search.Run(alg, snap, sink,
		search.WithEndpointsFromRoles(),
		search.WithContext(ctx),
		search.WithLogger(b.log),
		search.WithTracker(&b.tracker),
	)
}

func (b *Board) paint(c gridgraph.Cell, m Marker) {
	b.mu.Lock()
	if b.grid.InBounds(c) {
		b.markers[b.grid.Index(c)] = m
	}
	b.mu.Unlock()

	b.onChange()
}
