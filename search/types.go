package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/metrics"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name
	// that does not select a strategy.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the frontier policy and cost function.
type Algorithm int

const (
	// Dijkstra expands by cost-so-far (uniform-cost search).
	Dijkstra Algorithm = iota
	// AStar expands by cost-so-far plus heuristic.
	AStar
	// BFS expands in discovery order.
	BFS
	// DFS expands the most recently discovered cell first.
	DFS
)

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, DFS}
}

// String returns the display name.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Optimal reports whether a finds a shortest path on a unit-cost grid.
func (a Algorithm) Optimal() bool {
	return a == Dijkstra || a == AStar || a == BFS
}

// costAware reports whether a re-opens cells on a strictly cheaper path.
func (a Algorithm) costAware() bool {
	return a == Dijkstra || a == AStar
}

func (a Algorithm) valid() bool {
	return a >= Dijkstra && a <= DFS
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "dijkstra" or "ucs", "astar" or "a*", "bfs", "dfs".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra", "ucs":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Heuristic estimates the remaining steps from a cell to the goal.
// It must never overestimate for A* to stay optimal.
type Heuristic func(from, goal grid.Cell) int

// Option configures Search behavior via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// MaxDepth, if > 0, stops expanding cells whose depth reaches it
	// (depth-limited search). 0 disables the limit.
	MaxDepth int

	// OnVisit is called when a cell is expanded. Returning an error
	// aborts the search and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// OnDiscover is called on every frontier insertion after the start.
	OnDiscover func(c, from grid.Cell)

	// Heuristic is used by AStar; defaults to grid.Manhattan.
	Heuristic Heuristic

	// Clock feeds the metrics collector; defaults to time.Now.
	Clock func() time.Time

	// Logger receives debug records for search start and finish.
	Logger *slog.Logger

	// set by WithHeuristic; admissibility is then unknown
	customHeuristic bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no depth limit
//   - no-op hooks
//   - Manhattan heuristic
//   - time.Now clock
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   0,
		OnVisit:    func(grid.Cell, int) error { return nil },
		OnDiscover: func(grid.Cell, grid.Cell) {},
		Heuristic:  grid.Manhattan,
		Clock:      time.Now,
		Logger:     logging.Discard(),
	}
}

// WithMaxDepth limits expansion to cells fewer than d steps from start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every expansion.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscover registers a callback run on every frontier insertion.
func WithOnDiscover(fn func(c, from grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithHeuristic replaces the A* heuristic. Ignored by other algorithms.
// The search cannot tell whether h is admissible, so A* results produced
// with it are not reported as optimal.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
		o.customHeuristic = true
	}
}

// WithClock sets the time source used for Metrics.Elapsed.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of one search. It is never mutated after Search
// returns and may be shared freely.
type Result struct {
	Algorithm Algorithm
	// Found is false when the frontier emptied without reaching the goal.
	Found bool
	// Path runs from Start to Goal inclusive; nil when !Found.
	Path []grid.Cell
	// Order lists cells in the order they were expanded.
	Order   []grid.Cell
	Metrics metrics.Metrics
	// DepthLimit echoes Options.MaxDepth.
	DepthLimit int
	// CustomHeuristic is set when an A* search used a heuristic supplied
	// through WithHeuristic.
	CustomHeuristic bool
}

// NoPath reports the explicit "no path" outcome.
func (r Result) NoPath() bool { return !r.Found }

// Optimal reports whether Path is guaranteed to be a shortest path.
func (r Result) Optimal() bool {
	return r.Found && r.guaranteed()
}

// guaranteed reports whether the settings of r promise a shortest path.
func (r Result) guaranteed() bool {
	return r.DepthLimit == 0 && !r.CustomHeuristic && r.Algorithm.Optimal()
}

// Summary converts r into the stats panel record.
func (r Result) Summary() metrics.Summary {
	return metrics.Summary{
		Algorithm:  r.Algorithm.String(),
		Metrics:    r.Metrics,
		Optimal:    r.guaranteed(),
		DepthLimit: r.DepthLimit,
	}
}
