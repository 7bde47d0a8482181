package gridgraph

import (
	"container/list"
	"fmt"
)

// FewestWalls finds a route from a to b that crosses the minimum number of
// wall cells, and returns that route (a and b included) with the wall count.
// A count of zero means a and b are already connected.
//
// Behavior:
//  1. Validate that both endpoints are in bounds.
//  2. 0–1 BFS from a:
//     • Moving into an open cell → cost 0
//     • Moving into a wall cell  → cost 1
//  3. Stop when b is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(R·C) time, Memory: O(R·C).
func (g *Grid) FewestWalls(a, b Cell) (path []Cell, walls int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %s→%s outside %dx%d grid", ErrNoPath, a, b, g.rows, g.cols)
	}

	N := len(g.roles)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := g.Index(a), g.Index(b)
	dist[src] = g.wallCost(src)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range offsets {
			vc := Cell{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := g.wallCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if dist[dst] == inf {
		return nil, 0, ErrNoPath
	}
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

func (g *Grid) wallCost(idx int) int {
	if g.roles[idx] == RoleWall {
		return 1
	}

	return 0
}
