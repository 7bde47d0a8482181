package stepper

import (
	"context"
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

var (
	_ search.StepSink = (*Recorder)(nil)
	_ search.StepSink = Funcs{}
)

// Recorder is a search.StepSink that keeps every event in order and
// delegates suspension to Pacer (Immediate when nil). Visits and Path may be
// read while a search is running.
type Recorder struct {
	Pacer Pacer

	mu     sync.Mutex
	visits []gridgraph.Cell
	path   []gridgraph.Cell
}

// NewRecorder returns a Recorder paced by p.
func NewRecorder(p Pacer) *Recorder {
	return &Recorder{Pacer: p}
}

// OnVisit records a settled cell.
func (r *Recorder) OnVisit(c gridgraph.Cell) {
	r.mu.Lock()
	r.visits = append(r.visits, c)
	r.mu.Unlock()
}

// OnPath records a path cell.
func (r *Recorder) OnPath(c gridgraph.Cell) {
	r.mu.Lock()
	r.path = append(r.path, c)
	r.mu.Unlock()
}

// Suspend defers to the configured Pacer.
func (r *Recorder) Suspend(ctx context.Context) error {
	if r.Pacer == nil {
		return ctx.Err()
	}

	return r.Pacer.Suspend(ctx)
}

// Visits returns a copy of the settled cells in order.
func (r *Recorder) Visits() []gridgraph.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]gridgraph.Cell(nil), r.visits...)
}

// Path returns a copy of the reported path cells in order (end towards start).
func (r *Recorder) Path() []gridgraph.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]gridgraph.Cell(nil), r.path...)
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.visits, r.path = nil, nil
	r.mu.Unlock()
}

// Funcs builds a search.StepSink from optional callbacks and a Pacer.
type Funcs struct {
	Visit func(gridgraph.Cell)
	Path  func(gridgraph.Cell)
	Pacer Pacer
}

// OnVisit calls f.Visit if set.
func (f Funcs) OnVisit(c gridgraph.Cell) {
	if f.Visit != nil {
		f.Visit(c)
	}
}

// OnPath calls f.Path if set.
func (f Funcs) OnPath(c gridgraph.Cell) {
	if f.Path != nil {
		f.Path(c)
	}
}

// Suspend defers to f.Pacer, or resumes at once when it is nil.
func (f Funcs) Suspend(ctx context.Context) error {
	if f.Pacer == nil {
		return ctx.Err()
	}

	return f.Pacer.Suspend(ctx)
}
