package frontier

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Node is a frontier entry.
type Node struct {
	Cell     grid.Cell
	Cost     int // steps from the start cell
	Priority int // Cost for Dijkstra, Cost+heuristic for A*
	Depth    int // equals Cost on unit-step grids
}

// Frontier is the ordering policy the search engine expands from.
// Pop on an empty frontier panics.
type Frontier interface {
	Push(n Node)
	Pop() Node
	Len() int
	Empty() bool
}

//----------------------------------------------------------------------------//
// Priority
//----------------------------------------------------------------------------//

// Priority is a min-heap frontier. Stale entries are left in place
// ("lazy decrease-key"); the engine skips them when popped.
type Priority struct {
	pq nodePQ
}

// NewPriority returns an empty Priority frontier.
func NewPriority() *Priority {
	p := &Priority{pq: make(nodePQ, 0, 16)}
	heap.Init(&p.pq)
	return p
}

// Push inserts n.
func (p *Priority) Push(n Node) { heap.Push(&p.pq, n) }

// Pop removes the entry with the lowest (Priority, Row, Col, Cost).
func (p *Priority) Pop() Node { return heap.Pop(&p.pq).(Node) }

// Len returns the number of entries, stale ones included.
func (p *Priority) Len() int { return p.pq.Len() }

// Empty reports whether no entries remain.
func (p *Priority) Empty() bool { return p.pq.Len() == 0 }

// nodePQ implements heap.Interface over Node values.
type nodePQ []Node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cell.Row != b.Cell.Row {
		return a.Cell.Row < b.Cell.Row
	}
	if a.Cell.Col != b.Cell.Col {
		return a.Cell.Col < b.Cell.Col
	}
	return a.Cost < b.Cost
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(Node)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

//----------------------------------------------------------------------------//
// FIFO
//----------------------------------------------------------------------------//

// FIFO is a first-in, first-out frontier.
type FIFO struct {
	items []Node
	head  int
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO() *FIFO { return &FIFO{} }

// Push appends n to the back.
func (q *FIFO) Push(n Node) { q.items = append(q.items, n) }

// Pop removes the oldest entry.
func (q *FIFO) Pop() Node {
	if q.head >= len(q.items) {
		panic("frontier: Pop on empty FIFO")
	}
	n := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return n
}

// Len returns the number of queued entries.
func (q *FIFO) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue is drained.
func (q *FIFO) Empty() bool { return q.Len() == 0 }

//----------------------------------------------------------------------------//
// LIFO
//----------------------------------------------------------------------------//

// LIFO is a last-in, first-out frontier.
type LIFO struct {
	items []Node
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO() *LIFO { return &LIFO{} }

// Push places n on top.
func (s *LIFO) Push(n Node) { s.items = append(s.items, n) }

// Pop removes the newest entry.
func (s *LIFO) Pop() Node {
	if len(s.items) == 0 {
		panic("frontier: Pop on empty LIFO")
	}
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n
}

// Len returns the number of stacked entries.
func (s *LIFO) Len() int { return len(s.items) }

// Empty reports whether the stack is drained.
func (s *LIFO) Empty() bool { return len(s.items) == 0 }
