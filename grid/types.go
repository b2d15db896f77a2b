package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols was not positive.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrMissingStart indicates no Start cell has been placed.
	ErrMissingStart = errors.New("grid: start cell not set")
	// ErrMissingGoal indicates no Goal cell has been placed.
	ErrMissingGoal = errors.New("grid: goal cell not set")
	// ErrStartEqualsGoal indicates Start and Goal are the same cell.
	ErrStartEqualsGoal = errors.New("grid: start and goal are the same cell")
	// ErrEmptyGrid indicates Parse received no rows or an empty row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates Parse received rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates Parse met a rune it has no State for.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
	// ErrDuplicateMarker indicates Parse met a second 'S' or 'G'.
	ErrDuplicateMarker = errors.New("grid: start or goal appears more than once")
	// ErrBadDensity indicates an obstacle density outside [0,1].
	ErrBadDensity = errors.New("grid: obstacle density must be within [0,1]")
	// ErrNotEnoughSpace indicates fewer than two free cells for endpoints.
	ErrNotEnoughSpace = errors.New("grid: need at least two free cells for start and goal")
)

// Cell is a coordinate on the grid. Row grows downwards, Col to the right.
type Cell struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// State is the content of a single cell.
type State uint8

const (
	// Free is an empty, passable cell. It is the zero value.
	Free State = iota
	// Obstacle blocks movement.
	Obstacle
	// Start marks the search origin.
	Start
	// Goal marks the search target.
	Goal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Symbol returns the ASCII rune used by Parse and String.
func (s State) Symbol() rune {
	switch s {
	case Obstacle:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '.'
	}
}

// stateOf maps an ASCII rune back to its State.
func stateOf(r rune) (State, bool) {
	switch r {
	case '.':
		return Free, true
	case '#':
		return Obstacle, true
	case 'S':
		return Start, true
	case 'G':
		return Goal, true
	}
	return Free, false
}

// offsets lists the orthogonal moves in expansion order: up, right, down, left.
var offsets = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
