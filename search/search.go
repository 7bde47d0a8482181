// Package search implements the shared frontier loop behind A* and Dijkstra
// on a unit-cost, 4-connected grid.
//
// Notes on implementation choices:
//
//   - The grid is snapshotted before validation, so the run observes a
//     stable topology even if the caller keeps editing the original.
//   - gScore and cameFrom are maps keyed by gridgraph.Cell values.
//   - fScore is allocated only for A*; Dijkstra's priority is gScore itself.
package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// AStar searches g from the start cell to the end cell, ordering the
// frontier by gScore + Manhattan distance to the end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Start and end must be supplied, or found via WithEndpointsFromRoles
//     (ErrStartUnset, ErrEndUnset).
//  3. Both must lie inside g (ErrOutOfBounds) and not be walls (ErrBlockedEndpoint).
//
// A nil sink runs the search without pacing or notifications.
func AStar(g *gridgraph.Grid, sink StepSink, opts ...Option) (*Result, error) {
	return Run(AlgorithmAStar, g, sink, opts...)
}

// Dijkstra searches g from the start cell to the end cell, ordering the
// frontier by gScore alone. Validation matches AStar.
func Dijkstra(g *gridgraph.Grid, sink StepSink, opts ...Option) (*Result, error) {
	return Run(AlgorithmDijkstra, g, sink, opts...)
}

// Run searches g with the given algorithm. See AStar for the contract.
func Run(alg Algorithm, g *gridgraph.Grid, sink StepSink, opts ...Option) (*Result, error) {
	if alg != AlgorithmAStar && alg != AlgorithmDijkstra {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if sink == nil {
		sink = nopSink{}
	}

	snap := g.Snapshot()
	start, end, err := resolveEndpoints(snap, &cfg)
	if err != nil {
		return nil, err
	}

	r := newRunner(alg, snap, start, end, sink, cfg)
	if cfg.Tracker != nil {
		if err = cfg.Tracker.begin(); err != nil {
			return nil, err
		}
	}

	began := time.Now()
	err = r.process()
	observe(r.res, time.Since(began))
	if cfg.Tracker != nil {
		// Running → terminal cannot fail: begin succeeded on this tracker.
		_ = cfg.Tracker.finish(r.res.Outcome)
	}
	cfg.Logger.Debug("search finished",
		"algorithm", alg.String(),
		"outcome", r.res.Outcome.String(),
		"settled", len(r.res.Visited),
		"cost", r.res.Cost,
	)

	return r.res, err
}

// resolveEndpoints applies WithEndpointsFromRoles and validates start and end
// against the snapshot.
func resolveEndpoints(g *gridgraph.Grid, cfg *Options) (gridgraph.Cell, gridgraph.Cell, error) {
	start, end := cfg.Start, cfg.End
	hasStart, hasEnd := cfg.hasStart, cfg.hasEnd
	if cfg.EndpointsFromRoles {
		if !hasStart {
			start, hasStart = g.Start()
		}
		if !hasEnd {
			end, hasEnd = g.End()
		}
	}
	if !hasStart {
		return start, end, ErrStartUnset
	}
	if !hasEnd {
		return start, end, ErrEndUnset
	}

	for _, ep := range [2]struct {
		name string
		c    gridgraph.Cell
	}{{"start", start}, {"end", end}} {
		if !g.InBounds(ep.c) {
			return start, end, fmt.Errorf("%w: %s %s in %dx%d grid", ErrOutOfBounds, ep.name, ep.c, g.Rows(), g.Cols())
		}
		if g.IsWall(ep.c) {
			return start, end, fmt.Errorf("%w: %s %s", ErrBlockedEndpoint, ep.name, ep.c)
		}
	}

	return start, end, nil
}
