package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// runner holds the mutable state of a single search invocation.
type runner struct {
	ctx       context.Context
	grid      *gridgraph.Grid // private snapshot; read-only here
	sink      StepSink
	start     gridgraph.Cell
	end       gridgraph.Cell
	heuristic func(a, b gridgraph.Cell) int // nil for Dijkstra

	open     *frontier
	cameFrom map[gridgraph.Cell]gridgraph.Cell
	gScore   map[gridgraph.Cell]int
	fScore   map[gridgraph.Cell]int // A* only

	res *Result
}

func newRunner(alg Algorithm, g *gridgraph.Grid, start, end gridgraph.Cell, sink StepSink, cfg Options) *runner {
	n := g.Rows() * g.Cols()
	r := &runner{
		ctx:      cfg.Ctx,
		grid:     g,
		sink:     sink,
		start:    start,
		end:      end,
		open:     newFrontier(n),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell, n),
		gScore:   make(map[gridgraph.Cell]int, n),
		res: &Result{
			Algorithm: alg,
			Start:     start,
			End:       end,
		},
	}
	if alg == AlgorithmAStar {
		r.heuristic = gridgraph.Manhattan
		r.fScore = make(map[gridgraph.Cell]int, n)
	}

	// openSet = {start}, gScore[start] = 0, fScore[start] = h(start, end)
	r.gScore[start] = 0
	if r.fScore != nil {
		r.fScore[start] = r.heuristic(start, end)
	}
	r.open.push(start)

	return r
}

// priority is the frontier key: fScore for A*, gScore for Dijkstra.
func (r *runner) priority(c gridgraph.Cell) int {
	if r.fScore != nil {
		return r.fScore[c]
	}

	return r.gScore[c]
}

// process is the main loop. It returns a non-nil error only when the run is
// cancelled; an empty frontier is the normal Exhausted outcome.
func (r *runner) process() error {
	for r.open.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return r.cancel(err)
		}

		i := r.open.minIndex(r.priority)
		current := r.open.at(i)
		if current == r.end {
			r.succeed()
			return nil
		}

		r.open.removeAt(i)
		r.res.Visited = append(r.res.Visited, current)
		r.sink.OnVisit(current)
		if err := r.sink.Suspend(r.ctx); err != nil {
			return r.cancel(err)
		}

		r.relax(current)
	}
	r.res.Outcome = OutcomeExhausted

	return nil
}

// relax offers every open neighbour of current a path through current.
func (r *runner) relax(current gridgraph.Cell) {
	tentative := r.gScore[current] + 1
	for _, nb := range r.grid.Neighbors(current) {
		if known, ok := r.gScore[nb]; ok && tentative >= known {
			continue
		}
		r.cameFrom[nb] = current
		r.gScore[nb] = tentative
		if r.fScore != nil {
			r.fScore[nb] = tentative + r.heuristic(nb, r.end)
		}
		r.open.push(nb)
	}
}

// succeed walks cameFrom back from end, reports intermediate cells to the
// sink in end-to-start order, and stores the start-to-end path.
func (r *runner) succeed() {
	path := []gridgraph.Cell{r.end}
	for cur := r.end; ; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		if prev != r.start {
			r.sink.OnPath(prev)
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	r.res.Outcome = OutcomeSucceeded
	r.res.Path = path
	r.res.Cost = r.gScore[r.end]
}

// cancel records a cancelled outcome and wraps cause with ErrCancelled.
func (r *runner) cancel(cause error) error {
	r.res.Outcome = OutcomeCancelled
	if errors.Is(cause, ErrCancelled) {
		return cause
	}

	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
