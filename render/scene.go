package render

import (
	"iter"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Kind is what a cell shows in a frame.
type Kind uint8

const (
	// Empty is a free cell with no overlay.
	Empty Kind = iota
	// Obstacle is a blocked cell.
	Obstacle
	// Start is the search origin.
	Start
	// Goal is the search target.
	Goal
	// Visited is a cell the search has expanded.
	Visited
	// Current is the cell expanded in the frame being shown.
	Current
	// Path is a cell on the reconstructed path.
	Path
	// Robot marks the robot walking the path.
	Robot
)

// Symbol returns the text glyph for k. Empty, Obstacle, Start and Goal use
// the grid symbols so a frame without overlays reads back through grid.Parse.
func (k Kind) Symbol() rune {
	switch k {
	case Obstacle:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Visited:
		return 'o'
	case Current:
		return '@'
	case Path:
		return '*'
	case Robot:
		return 'R'
	default:
		return '.'
	}
}

// Scene is one frame: a Kind per cell, row-major.
type Scene struct {
	rows, cols int
	kinds      []Kind
	under      Kind // what the robot is standing on
	robot      grid.Cell
	hasRobot   bool
}

// NewScene builds the base layer of g: obstacles and the two markers.
func NewScene(g *grid.Grid) *Scene {
	s := &Scene{rows: g.Rows(), cols: g.Cols(), kinds: make([]Kind, g.Size())}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			cell := grid.Cell{Row: r, Col: c}
			st, _ := g.At(cell)
			switch st {
			case grid.Obstacle:
				s.kinds[g.Index(cell)] = Obstacle
			case grid.Start:
				s.kinds[g.Index(cell)] = Start
			case grid.Goal:
				s.kinds[g.Index(cell)] = Goal
			}
		}
	}
	return s
}

// Rows returns the number of rows.
func (s *Scene) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Scene) Cols() int { return s.cols }

// Kind returns what c shows. Out-of-range cells are Empty.
func (s *Scene) Kind(c grid.Cell) Kind {
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		return Empty
	}
	return s.kinds[c.Row*s.cols+c.Col]
}

// Mark paints k onto c. Start and Goal keep their glyph under the
// Visited, Current and Path layers. Robot is placed with MoveRobot.
func (s *Scene) Mark(c grid.Cell, k Kind) {
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols || k == Robot {
		return
	}
	i := c.Row*s.cols + c.Col
	switch s.kinds[i] {
	case Start, Goal, Obstacle, Robot:
		return
	}
	s.kinds[i] = k
}

// MoveRobot places the robot on c and restores the cell it left.
func (s *Scene) MoveRobot(c grid.Cell) {
	if s.hasRobot {
		s.kinds[s.robot.Row*s.cols+s.robot.Col] = s.under
	}
	i := c.Row*s.cols + c.Col
	s.under = s.kinds[i]
	s.kinds[i] = Robot
	s.robot, s.hasRobot = c, true
}

// String renders the frame one row per line.
func (s *Scene) String() string {
	var sb strings.Builder
	sb.Grow(s.rows * (s.cols + 1))
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range s.kinds[r*s.cols : (r+1)*s.cols] {
			sb.WriteRune(k.Symbol())
		}
	}
	return sb.String()
}

// Overlay returns the final picture of res on g: every expanded cell
// marked Visited and the path on top.
func Overlay(g *grid.Grid, res search.Result) *Scene {
	s := NewScene(g)
	for _, c := range res.Order {
		s.Mark(c, Visited)
	}
	for _, c := range res.Path {
		s.Mark(c, Path)
	}
	return s
}

// Text is Overlay rendered as a string.
func Text(g *grid.Grid, res search.Result) string {
	return Overlay(g, res).String()
}

// Frames replays res on g. It yields once per expanded cell (the newest
// one shown as Current), once per path cell as the path is traced, and
// once per robot step along the path. The same Scene is mutated between
// yields; callers must not retain it.
func Frames(g *grid.Grid, res search.Result) iter.Seq[*Scene] {
	return func(yield func(*Scene) bool) {
		s := NewScene(g)
		var last grid.Cell
		hasLast := false
		for _, c := range res.Order {
			if hasLast {
				s.Mark(last, Visited)
			}
			s.Mark(c, Current)
			last, hasLast = c, true
			if !yield(s) {
				return
			}
		}
		if hasLast {
			s.Mark(last, Visited)
		}
		if !res.Found {
			return
		}
		for _, c := range res.Path {
			s.Mark(c, Path)
			if !yield(s) {
				return
			}
		}
		for _, c := range res.Path {
			s.MoveRobot(c)
			if !yield(s) {
				return
			}
		}
	}
}
