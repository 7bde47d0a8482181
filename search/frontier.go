package search

import "github.com/katalvlaran/gridpath/gridgraph"

// frontier is the open set: an insertion-ordered slice plus a membership
// index. minIndex scans linearly and keeps the first cell among equal keys,
// which fixes tie-breaking to discovery order.
type frontier struct {
	items  []gridgraph.Cell
	member map[gridgraph.Cell]struct{}
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		items:  make([]gridgraph.Cell, 0, capacity),
		member: make(map[gridgraph.Cell]struct{}, capacity),
	}
}

// Len returns the number of open cells.
func (f *frontier) Len() int { return len(f.items) }

// contains reports whether c is open.
func (f *frontier) contains(c gridgraph.Cell) bool {
	_, ok := f.member[c]
	return ok
}

// push appends c unless it is already open.
func (f *frontier) push(c gridgraph.Cell) {
	if f.contains(c) {
		return
	}
	f.member[c] = struct{}{}
	f.items = append(f.items, c)
}

// minIndex returns the index of the first cell with the smallest key.
// The frontier must not be empty.
func (f *frontier) minIndex(key func(gridgraph.Cell) int) int {
	best, bestKey := 0, key(f.items[0])
	for i := 1; i < len(f.items); i++ {
		// strict < keeps the earliest cell on ties
		if k := key(f.items[i]); k < bestKey {
			best, bestKey = i, k
		}
	}

	return best
}

// at returns the cell at index i.
func (f *frontier) at(i int) gridgraph.Cell { return f.items[i] }

// removeAt deletes the cell at index i, preserving the order of the rest.
func (f *frontier) removeAt(i int) gridgraph.Cell {
	c := f.items[i]
	f.items = append(f.items[:i], f.items[i+1:]...)
	delete(f.member, c)

	return c
}
