// Package config loads the gridpath CLI configuration from a TOML file.
//
// TOML format:
//
//	algorithm = "astar"   # dijkstra | astar | bfs | dfs | all
//	max_depth = 0
//	workers   = 4
//
//	[log]
//	format = "text"       # text | json
//	level  = "info"
//
//	[random]
//	rows    = 25
//	cols    = 35
//	density = 0.2
//	seed    = 1
//
//	[animation]
//	step_ms = 50
//
// Keys left out of the file keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridpath/search"
)

// AllAlgorithms is the Algorithm value that selects every strategy.
const AllAlgorithms = "all"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the CLI configuration.
type Config struct {
	Algorithm string    `toml:"algorithm"`
	MaxDepth  int       `toml:"max_depth"`
	Workers   int       `toml:"workers"`
	Log       Log       `toml:"log"`
	Random    Random    `toml:"random"`
	Animation Animation `toml:"animation"`
}

// Log selects the slog handler.
type Log struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Random describes the generated grid used when no scenario is given.
type Random struct {
	Rows    int     `toml:"rows"`
	Cols    int     `toml:"cols"`
	Density float64 `toml:"density"`
	Seed    int64   `toml:"seed"`
}

// Animation paces the terminal replay of a search.
type Animation struct {
	StepMS int `toml:"step_ms"`
}

// Step returns the delay between two animation frames.
func (a Animation) Step() time.Duration {
	return time.Duration(a.StepMS) * time.Millisecond
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Algorithm: "astar",
		Workers:   4,
		Log:       Log{Format: "text", Level: "info"},
		Random:    Random{Rows: 25, Cols: 35, Density: 0.2, Seed: 1},
		Animation: Animation{StepMS: 50},
	}
}

// Load reads path over Default and validates the result. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %q: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config file %q: %w", path, err)
	}
	return cfg, nil
}

// Algorithms resolves the Algorithm field into the strategies to run.
func (c Config) Algorithms() ([]search.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(c.Algorithm), AllAlgorithms) {
		return search.Algorithms(), nil
	}
	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}
	return []search.Algorithm{alg}, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if _, err := c.Algorithms(); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	switch {
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalid, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	case c.Random.Rows <= 0 || c.Random.Cols <= 0:
		return fmt.Errorf("%w: random grid %dx%d", ErrInvalid, c.Random.Rows, c.Random.Cols)
	case c.Random.Density < 0 || c.Random.Density > 1:
		return fmt.Errorf("%w: random.density %v outside [0,1]", ErrInvalid, c.Random.Density)
	case c.Animation.StepMS < 0:
		return fmt.Errorf("%w: animation.step_ms %d is negative", ErrInvalid, c.Animation.StepMS)
	}
	return nil
}
