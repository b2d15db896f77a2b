package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for path reconstruction and verification.
var (
	// ErrDisconnectedPath indicates the predecessor chain from goal never
	// reached start. It signals corrupted search bookkeeping, not bad input.
	ErrDisconnectedPath = errors.New("route: predecessor chain does not reach start")
	// ErrEmptyPath indicates Verify got no cells.
	ErrEmptyPath = errors.New("route: path is empty")
	// ErrEndpoints indicates the path does not run from Start to Goal.
	ErrEndpoints = errors.New("route: path does not run from start to goal")
	// ErrNotAdjacent indicates two consecutive cells are not 4-adjacent.
	ErrNotAdjacent = errors.New("route: consecutive cells are not adjacent")
	// ErrBlocked indicates the path crosses an obstacle or leaves the grid.
	ErrBlocked = errors.New("route: path crosses an obstacle")
)

// Reconstruct walks prev backwards from goal until start, then returns the
// cells in start→goal order. The walk gives up after bound steps; callers
// pass rows×cols, the longest simple path a grid admits.
//
// Complexity: O(L) for a path of L cells.
func Reconstruct(prev map[grid.Cell]grid.Cell, start, goal grid.Cell, bound int) ([]grid.Cell, error) {
	path := []grid.Cell{goal}
	for cur, steps := goal, 0; cur != start; steps++ {
		if steps >= bound {
			return nil, fmt.Errorf("%w: exceeded %d steps from %v", ErrDisconnectedPath, bound, goal)
		}
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrDisconnectedPath, cur)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Verify checks that path starts on g's Start, ends on g's Goal, and that
// every step moves to an orthogonally adjacent passable cell.
func Verify(g *grid.Grid, path []grid.Cell) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	start, okS := g.Start()
	goal, okG := g.Goal()
	if !okS || !okG || path[0] != start || path[len(path)-1] != goal {
		return fmt.Errorf("%w: got %v→%v", ErrEndpoints, path[0], path[len(path)-1])
	}
	for i, c := range path {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v at step %d", ErrBlocked, c, i)
		}
		if i > 0 && grid.Manhattan(path[i-1], c) != 1 {
			return fmt.Errorf("%w: %v→%v at step %d", ErrNotAdjacent, path[i-1], c, i)
		}
	}
	return nil
}

// Steps returns the number of moves along path.
func Steps(path []grid.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
