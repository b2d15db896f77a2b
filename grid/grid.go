package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a fixed-size lattice of cells. Obstacles live in a row-major
// slice; Start and Goal are markers so that at most one of each exists.
type Grid struct {
	rows, cols int
	blocked    []bool

	start, goal       Cell
	hasStart, hasGoal bool
}

// New returns an all-Free grid of the given size.
// Returns ErrBadDimensions if rows or cols is not positive.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}, nil
}

// Parse builds a Grid from ASCII rows: '.' Free, '#' Obstacle,
// 'S' Start, 'G' Goal. Every row must have the same length.
//
// Parse does not call Validate; a layout without 'S' or 'G' is accepted
// so callers can place endpoints afterwards.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	for i, row := range rows {
		if n := len([]rune(row)); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, width)
		}
	}

	g, err := New(len(rows), width)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, sym := range []rune(row) {
			st, ok := stateOf(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, sym, r, c)
			}
			if (st == Start && g.hasStart) || (st == Goal && g.hasGoal) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrDuplicateMarker, sym, r, c)
			}
			// Set cannot fail: (r,c) is in bounds by construction.
			_ = g.Set(Cell{r, c}, st)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps an in-bounds c to its row-major index.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Set writes state into c.
//
// Start and Goal move their marker: placing Start elsewhere frees the old
// Start cell, and the new cell stops being an obstacle. Writing Free or
// Obstacle onto a marked cell removes that marker.
func (g *Grid) Set(c Cell, state State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	i := g.Index(c)
	switch state {
	case Start:
		g.start, g.hasStart = c, true
		g.blocked[i] = false
	case Goal:
		g.goal, g.hasGoal = c, true
		g.blocked[i] = false
	case Free, Obstacle:
		g.clearMarkers(c)
		g.blocked[i] = state == Obstacle
	default:
		return fmt.Errorf("grid: cannot set %v at %v", state, c)
	}
	return nil
}

func (g *Grid) clearMarkers(c Cell) {
	if g.hasStart && g.start == c {
		g.hasStart = false
	}
	if g.hasGoal && g.goal == c {
		g.hasGoal = false
	}
}

// At returns the state of c; unset cells are Free.
// A cell carrying both markers reports Start.
func (g *Grid) At(c Cell) (State, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.state(c), nil
}

// state is At without the bounds check.
func (g *Grid) state(c Cell) State {
	switch {
	case g.hasStart && g.start == c:
		return Start
	case g.hasGoal && g.goal == c:
		return Goal
	case g.blocked[g.Index(c)]:
		return Obstacle
	default:
		return Free
	}
}

// Passable reports whether c is in bounds and not an obstacle.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// Start returns the Start cell and whether one is placed.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Goal returns the Goal cell and whether one is placed.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// Neighbors yields the passable orthogonal neighbours of c in the order
// up, right, down, left. No diagonal moves.
func (g *Grid) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range offsets {
			n := Cell{c.Row + d.Row, c.Col + d.Col}
			if !g.Passable(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Validate checks that the grid is ready to be searched.
func (g *Grid) Validate() error {
	switch {
	case !g.hasStart:
		return ErrMissingStart
	case !g.hasGoal:
		return ErrMissingGoal
	case g.start == g.goal:
		return fmt.Errorf("%w: %v", ErrStartEqualsGoal, g.start)
	}
	return nil
}

// Obstacles returns the number of obstacle cells.
func (g *Grid) Obstacles() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Reset makes every cell Free and removes both markers.
func (g *Grid) Reset() {
	clear(g.blocked)
	g.hasStart, g.hasGoal = false, false
}

// Clone returns a deep copy that shares no state with g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.blocked = make([]bool, len(g.blocked))
	copy(cp.blocked, g.blocked)
	return &cp
}

// String renders the grid with the same symbols Parse accepts,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.state(Cell{r, c}).Symbol())
		}
	}
	return sb.String()
}
