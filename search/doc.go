// Package search runs shortest-path searches over a gridgraph.Grid and
// reports each step to a caller-supplied StepSink.
//
// Overview:
//
//   - AStar orders its frontier by f = g + Manhattan(cell, end).
//   - Dijkstra orders its frontier by g alone (uniform-cost search).
//   - Both share one relaxation loop; only the priority accessor differs, so
//     their neighbour-expansion order and tie-breaking are identical.
//   - Every edge costs 1, and Manhattan distance is admissible and consistent
//     on a 4-connected grid, so both report optimal path costs.
//
// Step protocol:
//
//   - A node is settled when it is selected from the frontier and removed.
//     Each settled node is reported once via StepSink.OnVisit, in settlement
//     order, followed by StepSink.Suspend. The end cell is never settled: the
//     search stops as soon as it is selected.
//   - On success the predecessor chain is walked from end to start and every
//     intermediate cell (start and end excluded) is reported via
//     StepSink.OnPath in that end-to-start order.
//   - Suspend is the pacing point. Returning an error, or cancelling the
//     context, moves the run to OutcomeCancelled.
//
// Frontier:
//
//   - The open set is an insertion-ordered slice scanned linearly for the
//     minimum priority. On ties the first-inserted cell wins. At the grid
//     sizes this package targets (hundreds of cells) the scan is cheaper
//     than keeping a heap ordered by insertion sequence.
//
// Outcomes and errors:
//
//   - OutcomeSucceeded: Result.Path holds start…end, Result.Cost its length.
//   - OutcomeExhausted: the frontier emptied; no path exists. err == nil.
//   - OutcomeCancelled: err wraps ErrCancelled and the cause.
//   - ErrNilGrid, ErrStartUnset, ErrEndUnset, ErrOutOfBounds,
//     ErrBlockedEndpoint: rejected before the loop starts.
//
// Thread safety:
//
//   - Each call searches a private Snapshot of the grid, so later edits to
//     the caller's grid never affect a run in flight. Search state is owned
//     by the call and discarded when it returns.
//
// Example:
//
//	g := gridgraph.MustParse("S..\n.#.\n..E")
//	res, err := search.AStar(g, nil, search.WithEndpointsFromRoles())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Cost) // succeeded 4
package search
