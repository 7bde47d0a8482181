// Package gridgraph treats a fixed rows×cols board of cells as an
// unweighted, 4-connected graph for shortest-path search.
//
// What:
//
//   - Grid holds one Role per cell: none, start, end or wall.
//   - Neighbors yields the open orthogonal neighbours of a cell in a fixed
//     order: up, down, left, right. Search traces depend on that order.
//   - Manhattan is the admissible, consistent heuristic for the grid.
//   - Snapshot deep-copies a Grid so a search never observes later edits.
//   - Parse and String read and write a compact ASCII layout.
//   - ConnectedComponents, Connected and FewestWalls analyse wall topology.
//   - Scatter adds random walls reproducibly from a seeded source.
//
// Why:
//
//   - Search code queries topology only; it never owns cell state.
//   - Value-typed Cell coordinates work as map keys without identity tricks.
//
// Complexity:
//
//   - Neighbors, Role, SetRole: O(1).
//   - Snapshot, Parse, String: O(R×C).
//   - ConnectedComponents:     O(R×C), Memory: O(R×C).
//   - FewestWalls:             O(R×C), Memory: O(R×C).
//   - Scatter:                 O(R×C).
//
// ASCII layout glyphs:
//
//	.  open cell
//	#  wall
//	S  start
//	E  end
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: layout rows differ in length.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrUnknownRole: a role value outside the defined set.
//   - ErrBadGlyph: an unrecognised character in a layout.
//   - ErrNoPath: FewestWalls endpoints cannot be joined.
//   - ErrInvalidDensity, ErrNeedRandSource: bad Scatter arguments.
//
// A Grid is not safe for concurrent mutation; callers that share one across
// goroutines synchronise externally and hand searches a Snapshot.
package gridgraph
