// Package gridpath is a step-by-step shortest-path playground on a 2D grid:
// place a start, an end and some walls, then watch A* or Dijkstra flood the
// board and trace the route back.
//
// 🚀 What is in the box?
//
//	A small, concurrency-safe core plus the front ends around it:
//		• Grid model: cells, roles (start, end, wall), neighbours, text layouts
//		• Search engine: A* and Dijkstra sharing one frontier loop
//		• Step protocol: every settled cell is reported, then the run suspends
//		• Pacing: immediate, fixed delay, or manual single-stepping
//		• Board and session: markers overlay, click placement, cancellation
//		• CLI and terminal UI
//
// ✨ Why a step protocol?
//
//   - Deterministic: same grid, same visit order, every time
//   - Observable: the engine knows nothing about rendering
//   - Cancellable: a context or a failing suspension ends a run cleanly
//
// Packages:
//
//	gridgraph/: Grid, Cell, Role; layouts, components, fewest-walls, scatter
//	search/: AStar, Dijkstra, Run, Compare; Result, Tracker, StepSink
//	stepper/: Pacer implementations and ready-made StepSinks
//	board/: Board (markers, phases, Reset) and Session (async runs)
//	config/: YAML scenarios validated on load
//	render/: plain and lipgloss renderings of a board
//	tui/: bubbletea front end
//	cmd/gridpath: the command line
//
// Quick ASCII example:
//
//	S . # .        S o # .
//	. . # .   →    * o # .
//	. . . .        * * o o
//	# . . E        # * * E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
