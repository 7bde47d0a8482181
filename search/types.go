// Package search defines the options, results, step contract and sentinel
// errors of the grid search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStartUnset indicates no start cell was supplied or found.
	ErrStartUnset = errors.New("search: start cell is not set")

	// ErrEndUnset indicates no end cell was supplied or found.
	ErrEndUnset = errors.New("search: end cell is not set")

	// ErrOutOfBounds indicates the start or end cell lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrBlockedEndpoint indicates the start or end cell is a wall.
	ErrBlockedEndpoint = errors.New("search: endpoint is a wall")

	// ErrCancelled indicates the run stopped before reaching a terminal outcome.
	ErrCancelled = errors.New("search: cancelled")

	// ErrUnknownAlgorithm indicates an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// StepSink receives progress from a running search. It is implemented by the
// presentation layer.
//
// OnVisit is called once per settled cell, in settlement order.
// OnPath is called once per intermediate path cell, from end towards start.
// Suspend is called after every OnVisit; the search blocks until it returns.
// A non-nil error from Suspend cancels the run.
type StepSink interface {
	OnVisit(c gridgraph.Cell)
	OnPath(c gridgraph.Cell)
	Suspend(ctx context.Context) error
}

// nopSink is used when the caller passes a nil StepSink.
type nopSink struct{}

func (nopSink) OnVisit(gridgraph.Cell) {}
func (nopSink) OnPath(gridgraph.Cell)  {}
func (nopSink) Suspend(ctx context.Context) error { return ctx.Err() }

// Algorithm selects the frontier priority policy.
type Algorithm uint8

const (
	// AlgorithmAStar orders the frontier by gScore + Manhattan heuristic.
	AlgorithmAStar Algorithm = iota
	// AlgorithmDijkstra orders the frontier by gScore alone.
	AlgorithmDijkstra
)

// String returns "astar" or "dijkstra".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "astar"
	case AlgorithmDijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm accepts "astar", "a*", "a", "dijkstra" or "d", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a", "a-star":
		return AlgorithmAStar, nil
	case "dijkstra", "d", "ucs":
		return AlgorithmDijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Outcome is the terminal result of a run.
type Outcome uint8

const (
	// OutcomeSucceeded means the end cell was reached.
	OutcomeSucceeded Outcome = iota + 1
	// OutcomeExhausted means the frontier emptied without reaching the end.
	OutcomeExhausted
	// OutcomeCancelled means the run was stopped from outside.
	OutcomeCancelled
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result describes a finished run.
type Result struct {
	Algorithm Algorithm
	Outcome   Outcome
	Start     gridgraph.Cell
	End       gridgraph.Cell
	// Path is start…end inclusive when Outcome is OutcomeSucceeded, else nil.
	Path []gridgraph.Cell
	// Cost is gScore[end]: len(Path)-1 on success, 0 otherwise.
	Cost int
	// Visited lists settled cells in settlement order.
	Visited []gridgraph.Cell
}

// Found reports whether the run reached the end cell.
func (r *Result) Found() bool {
	return r != nil && r.Outcome == OutcomeSucceeded
}

// Options configures a search run.
//
// Start, End – endpoints; required unless EndpointsFromRoles is set.
// Ctx        – cancellation for the run; checked before each selection.
// Logger     – structured logger; discarded by default.
// Tracker    – optional state machine observer.
type Options struct {
	Ctx                context.Context
	Start, End         gridgraph.Cell
	EndpointsFromRoles bool
	Logger             *slog.Logger
	Tracker            *Tracker

	hasStart, hasEnd bool
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// From sets the start cell.
func From(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Start = c
		o.hasStart = true
	}
}

// To sets the end cell.
func To(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.End = c
		o.hasEnd = true
	}
}

// WithEndpointsFromRoles reads any endpoint not set by From or To from the
// grid's RoleStart and RoleEnd cells.
func WithEndpointsFromRoles() Option {
	return func(o *Options) {
		o.EndpointsFromRoles = true
	}
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
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

// WithTracker attaches a Tracker that follows the run's state transitions.
func WithTracker(t *Tracker) Option {
	return func(o *Options) {
		o.Tracker = t
	}
}

// DefaultOptions returns Options with a background context, a discarding
// logger and no endpoints.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}
