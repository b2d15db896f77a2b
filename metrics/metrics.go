package metrics

import (
	"fmt"
	"io"
	"time"
)

// Metrics is the statistics record attached to every search result.
type Metrics struct {
	// NodesVisited counts expanded cells.
	NodesVisited int
	// NodesExplored counts frontier insertions, the start cell included.
	NodesExplored int
	// PathLength is the number of cells on the path, 0 if none was found.
	PathLength int
	// Elapsed is the wall-clock duration of the search. Never negative.
	Elapsed time.Duration
}

// Collector accumulates Metrics for a single search.
// It is not safe for concurrent use.
type Collector struct {
	now      func() time.Time
	started  time.Time
	visited  int
	explored int
}

// NewCollector returns a Collector reading time from now.
// A nil now falls back to time.Now.
func NewCollector(now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{now: now}
}

// Start resets the counters and stamps the start time.
func (c *Collector) Start() {
	c.visited, c.explored = 0, 0
	c.started = c.now()
}

// Visit counts one expanded cell.
func (c *Collector) Visit() { c.visited++ }

// Explore counts one frontier insertion.
func (c *Collector) Explore() { c.explored++ }

// Visited returns the current expansion count.
func (c *Collector) Visited() int { return c.visited }

// Finish stamps the end time and returns the collected Metrics.
func (c *Collector) Finish(pathLen int) Metrics {
	elapsed := c.now().Sub(c.started)
	if elapsed < 0 {
		elapsed = 0
	}
	if pathLen < 0 {
		pathLen = 0
	}
	return Metrics{
		NodesVisited:  c.visited,
		NodesExplored: c.explored,
		PathLength:    pathLen,
		Elapsed:       elapsed,
	}
}

// Summary is what the stats panel shows for one finished search.
type Summary struct {
	Algorithm string
	Metrics   Metrics
	// Optimal marks algorithms guaranteed to return a shortest path.
	Optimal bool
	// DepthLimit is the depth cap in force, 0 for none.
	DepthLimit int
}

// Report writes s as the multi-line stats panel text.
func Report(w io.Writer, s Summary) error {
	m := s.Metrics
	_, err := fmt.Fprintf(w,
		"Algorithm: %s\nPath Length: %d\nNodes Visited: %d\nNodes Explored: %d\nAlgorithm Time: %.6fs\n",
		s.Algorithm, m.PathLength, m.NodesVisited, m.NodesExplored, m.Elapsed.Seconds())
	if err != nil {
		return err
	}
	if s.DepthLimit > 0 {
		if _, err = fmt.Fprintf(w, "Depth Limit: %d\n", s.DepthLimit); err != nil {
			return err
		}
	}
	if m.PathLength > 0 {
		optimal := "No"
		if s.Optimal {
			optimal = "Yes"
		}
		_, err = fmt.Fprintf(w, "Optimal: %s\n", optimal)
	}
	return err
}
