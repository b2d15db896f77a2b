// Package scenario reads grid layouts and run settings from YAML files.
//
// Format:
//
//	name: corridor
//	algorithms: [astar, bfs]
//	max_depth: 0
//	start: [0, 0]   # optional, overrides an S in the layout
//	goal: [1, 4]    # optional, overrides a G in the layout
//	layout:
//	  - "S.#.."
//	  - "..#.G"
//
// Layout rows use the grid symbols: '.' free, '#' obstacle, 'S' start, 'G' goal.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for scenario decoding.
var (
	// ErrNoLayout indicates the document has no layout rows.
	ErrNoLayout = errors.New("scenario: layout is empty")
	// ErrBadCoordinate indicates start or goal is not a [row, col] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be [row, col]")
	// ErrBadMaxDepth indicates a negative max_depth.
	ErrBadMaxDepth = errors.New("scenario: max_depth cannot be negative")
)

// Scenario is one decoded document.
type Scenario struct {
	Name       string   `yaml:"name"`
	Algorithms []string `yaml:"algorithms"`
	MaxDepth   int      `yaml:"max_depth"`
	Start      []int    `yaml:"start,omitempty"`
	Goal       []int    `yaml:"goal,omitempty"`
	Layout     []string `yaml:"layout"`
}

// Decode reads one scenario from r and checks that it builds a grid.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoLayout
		}
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if len(s.Layout) == 0 {
		return nil, ErrNoLayout
	}
	if s.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDepth, s.MaxDepth)
	}
	if _, err := s.Search(); err != nil {
		return nil, err
	}
	if _, err := s.Grid(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load opens path and decodes it. A scenario without a name takes the
// file path as its name.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Grid builds a fresh grid from the layout, then applies the start and
// goal overrides. Each call returns an independent grid.
func (s *Scenario) Grid() (*grid.Grid, error) {
	if len(s.Layout) == 0 {
		return nil, ErrNoLayout
	}
	g, err := grid.Parse(s.Layout)
	if err != nil {
		return nil, err
	}
	if s.Start != nil {
		c, err := cellOf(s.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		if err := g.Set(c, grid.Start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	if s.Goal != nil {
		c, err := cellOf(s.Goal)
		if err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
		if err := g.Set(c, grid.Goal); err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
	}
	return g, nil
}

// Search resolves the algorithm names; an empty list means none was
// requested and the caller's default applies.
func (s *Scenario) Search() ([]search.Algorithm, error) {
	algs := make([]search.Algorithm, 0, len(s.Algorithms))
	for _, name := range s.Algorithms {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func cellOf(pair []int) (grid.Cell, error) {
	if len(pair) != 2 {
		return grid.Cell{}, fmt.Errorf("%w: got %v", ErrBadCoordinate, pair)
	}
	return grid.Cell{Row: pair[0], Col: pair[1]}, nil
}
