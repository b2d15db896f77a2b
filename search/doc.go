// Package search runs Dijkstra, A*, BFS and DFS over a grid.Grid with one
// shared expansion loop; the algorithms differ only in frontier ordering
// and, for A*, in the priority function.
//
// What
//
//   - Search(g, alg, opts...) returns a Result: Found, the Start→Goal path,
//     the expansion order, Metrics and the depth limit in force.
//   - An unreachable goal is a Result with Found=false, not an error.
//   - Hooks: OnVisit (per expansion, may abort with an error) and
//     OnDiscover (per frontier insertion).
//   - WithMaxDepth(d) turns any algorithm into a depth-limited search.
//
// Predecessor policy
//
//	Dijkstra and A* re-open a discovered cell when a strictly cheaper path
//	to it appears; the predecessor is overwritten. BFS and DFS keep the
//	first predecessor recorded for a cell.
//
//	Under a depth limit BFS and DFS instead key cells by depth: a cell is
//	re-opened, even after it was expanded, whenever it is reached with a
//	strictly smaller depth. A depth-limited DFS therefore finds the goal
//	whenever some path to it fits the limit, and may expand a cell more
//	than once (each expansion counts in NodesVisited and Order).
//
// Determinism
//
//	Neighbours come in the order up, right, down, left; the priority
//	frontier breaks ties by row, then column. Identical inputs give
//	identical Results apart from Metrics.Elapsed.
//
// Optimality
//
//	Result.Optimal holds for Dijkstra, BFS and A* with the default
//	Manhattan heuristic when no depth limit is set. A heuristic supplied
//	through WithHeuristic is not checked for admissibility, so A* results
//	using one are never reported optimal.
//
// Complexity (N = rows×cols)
//
//   - Dijkstra, A*: O(N log N) time.
//   - BFS, DFS:     O(N) time without a depth limit.
//   - Memory:       O(N).
//
// Errors
//
//   - ErrNilGrid, ErrUnknownAlgorithm, ErrOptionViolation.
//   - grid.ErrMissingStart, grid.ErrMissingGoal, grid.ErrStartEqualsGoal,
//     returned before any cell is expanded.
//   - OnVisit errors, wrapped with the cell they occurred at.
package search
