package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/route"
)

// Search finds a path from g's Start to g's Goal using alg.
//
// Returns:
//
//   - Result with Found=true and the Start→Goal path, or Found=false when
//     the goal is unreachable (not an error).
//   - ErrNilGrid, ErrUnknownAlgorithm or ErrOptionViolation for bad input.
//   - grid.ErrMissingStart, grid.ErrMissingGoal or grid.ErrStartEqualsGoal
//     when g fails validation; no cell is expanded in that case.
//   - route.ErrDisconnectedPath (wrapped) if predecessor bookkeeping is
//     corrupt. This is an internal fault, never a user-facing outcome.
//   - any error returned by an OnVisit hook (wrapped).
//
// g must not be mutated while Search runs.
//
// Complexity: O(W·H·log(W·H)) for Dijkstra/A*, O(W·H) for BFS/DFS without a
// depth limit. Under a limit BFS/DFS may re-expand a cell once per smaller
// depth it is reached at.
func Search(g *grid.Grid, alg Algorithm, opts ...Option) (Result, error) {
	res := Result{Algorithm: alg}
	if g == nil {
		return res, ErrNilGrid
	}
	if !alg.valid() {
		return res, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return res, o.err
	}
	res.DepthLimit = o.MaxDepth
	res.CustomHeuristic = o.customHeuristic && alg == AStar
	if err := g.Validate(); err != nil {
		return res, err
	}

	e := newEngine(g, alg, o)
	log := o.Logger.With("algorithm", alg.String())
	log.Debug("search started", "rows", g.Rows(), "cols", g.Cols(), "start", e.start, "goal", e.goal)

	e.col.Start()
	found, err := e.run()
	var path []grid.Cell
	if err == nil && found {
		path, err = route.Reconstruct(e.prev, e.start, e.goal, g.Size())
	}
	res.Metrics = e.col.Finish(len(path))
	res.Order = e.order
	if err != nil {
		log.Error("search aborted", "err", err)
		return res, fmt.Errorf("search: %s: %w", alg, err)
	}
	res.Found = found
	res.Path = path

	log.Debug("search finished",
		"found", found,
		"visited", res.Metrics.NodesVisited,
		"explored", res.Metrics.NodesExplored,
		"path_length", res.Metrics.PathLength,
		"elapsed", res.Metrics.Elapsed)
	return res, nil
}

// engine holds the mutable state of a single search. Nothing in it
// outlives the Search call that created it.
type engine struct {
	g    *grid.Grid
	alg  Algorithm
	opts Options

	start, goal grid.Cell
	fr          frontier.Frontier
	lifo        bool
	// deepen re-opens a cell, visited or not, when it is reached with a
	// strictly smaller depth. Set for BFS/DFS under a depth limit.
	deepen bool

	visited []bool                  // expanded cells, row-major
	cost    []int                   // best known cost-so-far; -1 = undiscovered
	prev    map[grid.Cell]grid.Cell // predecessor of each discovered cell
	order   []grid.Cell             // expansion order
	col     *metrics.Collector
}

func newEngine(g *grid.Grid, alg Algorithm, o Options) *engine {
	start, _ := g.Start()
	goal, _ := g.Goal()
	e := &engine{
		g:       g,
		alg:     alg,
		opts:    o,
		start:   start,
		goal:    goal,
		visited: make([]bool, g.Size()),
		cost:    make([]int, g.Size()),
		prev:    make(map[grid.Cell]grid.Cell),
		col:     metrics.NewCollector(o.Clock),
		deepen:  o.MaxDepth > 0 && !alg.costAware(),
	}
	for i := range e.cost {
		e.cost[i] = -1
	}
	switch alg {
	case Dijkstra, AStar:
		e.fr = frontier.NewPriority()
	case BFS:
		e.fr = frontier.NewFIFO()
	case DFS:
		e.fr = frontier.NewLIFO()
		e.lifo = true
	}
	return e
}

// priority is the frontier key for a cell reached at cost.
func (e *engine) priority(c grid.Cell, cost int) int {
	if e.alg == AStar {
		return cost + e.opts.Heuristic(c, e.goal)
	}
	return cost
}

// run expands the frontier until the goal is popped or nothing is left.
func (e *engine) run() (bool, error) {
	e.cost[e.g.Index(e.start)] = 0
	e.fr.Push(frontier.Node{Cell: e.start, Priority: e.priority(e.start, 0)})
	e.col.Explore()

	for !e.fr.Empty() {
		n := e.fr.Pop()
		i := e.g.Index(n.Cell)
		if e.stale(n, i) {
			continue
		}
		e.visited[i] = true
		e.col.Visit()
		e.order = append(e.order, n.Cell)
		if err := e.opts.OnVisit(n.Cell, n.Depth); err != nil {
			return false, fmt.Errorf("OnVisit error at %v: %w", n.Cell, err)
		}

		if n.Cell == e.goal {
			return true, nil
		}
		if e.opts.MaxDepth > 0 && n.Depth >= e.opts.MaxDepth {
			continue
		}
		e.expand(n)
	}
	return false, nil
}

// stale reports whether n was superseded after it was pushed: by an
// expansion of the same cell, or under deepen by a shallower entry.
func (e *engine) stale(n frontier.Node, i int) bool {
	if e.deepen {
		return n.Depth > e.cost[i]
	}
	return e.visited[i]
}

// improves reports whether reaching cell j at tentative replaces what is
// already known about it.
func (e *engine) improves(j, tentative int) bool {
	known := e.cost[j]
	switch {
	case known < 0:
		return true
	case e.deepen:
		return tentative < known
	case e.visited[j] || !e.alg.costAware():
		return false
	default:
		return tentative < known
	}
}

// expand discovers the neighbours of n that improve on what is known.
func (e *engine) expand(n frontier.Node) {
	var buf [4]grid.Cell
	nbrs := buf[:0]
	for nb := range e.g.Neighbors(n.Cell) {
		nbrs = append(nbrs, nb)
	}
	// a stack pops in reverse, so push reversed to keep up/right/down/left
	if e.lifo {
		slices.Reverse(nbrs)
	}

	tentative := n.Cost + 1
	for _, nb := range nbrs {
		j := e.g.Index(nb)
		if !e.improves(j, tentative) {
			continue
		}
		e.cost[j] = tentative
		e.prev[nb] = n.Cell
		e.fr.Push(frontier.Node{
			Cell:     nb,
			Cost:     tentative,
			Priority: e.priority(nb, tentative),
			Depth:    tentative,
		})
		e.col.Explore()
		e.opts.OnDiscover(nb, n.Cell)
	}
}
