package gridgraph

import (
	"fmt"
	"math/rand"
)

// Scatter turns each empty cell into a wall independently with probability
// density. Start, end and existing walls are left alone. It returns the
// number of walls added.
//
// Cells are tried in row-major order with one rng draw each, so a fixed seed
// always yields the same board. rng may be nil only when density is 0 or 1.
// Returns ErrInvalidDensity or ErrNeedRandSource.
// Complexity: O(R×C).
func (g *Grid) Scatter(density float64, rng *rand.Rand) (int, error) {
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: %.6f", ErrInvalidDensity, density)
	}
	if rng == nil && density > 0 && density < 1 {
		return 0, ErrNeedRandSource
	}

	added := 0
	for i, r := range g.roles {
		if r != RoleNone {
			continue
		}
		wall := density == 1
		if rng != nil {
			wall = rng.Float64() < density
		}
		if wall {
			g.roles[i] = RoleWall
			added++
		}
	}

	return added, nil
}
