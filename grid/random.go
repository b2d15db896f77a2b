package grid

import (
	"fmt"
	"math/rand"
)

// ScatterObstacles turns each Free, unmarked cell into an Obstacle with
// probability density, drawing from rng in row-major order.
// Returns the number of obstacles added.
func (g *Grid) ScatterObstacles(rng *rand.Rand, density float64) (int, error) {
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadDensity, density)
	}
	added := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{r, c}
			if g.state(cell) != Free {
				continue
			}
			if rng.Float64() < density {
				g.blocked[g.Index(cell)] = true
				added++
			}
		}
	}
	return added, nil
}

// PlaceRandomEndpoints moves Start and Goal onto two distinct cells picked
// uniformly from the cells that are Free once the current markers are lifted.
func (g *Grid) PlaceRandomEndpoints(rng *rand.Rand) error {
	g.hasStart, g.hasGoal = false, false

	free := make([]Cell, 0, g.Size())
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.blocked[g.Index(Cell{r, c})] {
				free = append(free, Cell{r, c})
			}
		}
	}
	if len(free) < 2 {
		return fmt.Errorf("%w: %d free", ErrNotEnoughSpace, len(free))
	}

	si := rng.Intn(len(free))
	gi := rng.Intn(len(free) - 1)
	if gi >= si {
		gi++
	}
	g.start, g.hasStart = free[si], true
	g.goal, g.hasGoal = free[gi], true
	return nil
}
