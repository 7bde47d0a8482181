package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Comparison holds one result per algorithm for the same grid and endpoints.
type Comparison struct {
	AStar    *Result
	Dijkstra *Result
}

// SameCost reports whether both runs reached the same outcome and, when they
// succeeded, the same path cost. With an admissible heuristic this is always
// true for completed runs.
func (c *Comparison) SameCost() bool {
	if c.AStar == nil || c.Dijkstra == nil {
		return false
	}

	return c.AStar.Outcome == c.Dijkstra.Outcome && c.AStar.Cost == c.Dijkstra.Cost
}

// Compare runs AStar and Dijkstra concurrently on g without pacing. Each run
// works on its own snapshot and private state. Any Tracker in opts is
// ignored. The first error cancels the other run.
func Compare(ctx context.Context, g *gridgraph.Grid, opts ...Option) (*Comparison, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// one shared snapshot is fine: runs only read it
	snap := g.Snapshot()
	eg, ctx := errgroup.WithContext(ctx)
	cmp := &Comparison{}

	runOpts := append(append([]Option{}, opts...), WithContext(ctx), WithTracker(nil))
	eg.Go(func() error {
		res, err := Run(AlgorithmAStar, snap, nil, runOpts...)
		cmp.AStar = res
		return err
	})
	eg.Go(func() error {
		res, err := Run(AlgorithmDijkstra, snap, nil, runOpts...)
		cmp.Dijkstra = res
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return cmp, nil
}
