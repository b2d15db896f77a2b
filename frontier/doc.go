// Package frontier holds the discovered-but-unexpanded cells of a search.
//
// Three orderings share one interface:
//
//   - Priority: min-heap on Node.Priority (Dijkstra, A*). Equal priorities
//     are broken by lower Row, then lower Col, then lower Cost, so runs are
//     reproducible.
//   - FIFO: insertion-order queue (BFS).
//   - LIFO: insertion-order stack (DFS).
//
// Complexity:
//
//   - Priority: Push/Pop O(log N).
//   - FIFO, LIFO: Push/Pop amortised O(1).
package frontier
