// Package board is the interactive model around a search grid: the part a
// front end talks to.
//
// A Board owns a gridgraph.Grid plus a per-cell marker overlay (visited,
// path) that a running search paints through its StepSink. It exposes the
// core API used by front ends:
//
//	New(rows, cols)          configure
//	SetRole / Click          place start, end and walls
//	RunAStar / RunDijkstra   reset, then search synchronously
//	Reset                    clear markers, keep start, end and walls
//
// Click follows the placement phases AwaitingStart → AwaitingEnd →
// PaintingWalls: the first click places the start, the second the end, and
// every later click toggles a wall.
//
// A Session drives runs asynchronously for animated front ends. Starting a
// run while another is in flight cancels the earlier one and waits for it to
// stop before the board is reset, so two runs never paint the same board.
//
// All Board and Session methods are safe for concurrent use.
package board
