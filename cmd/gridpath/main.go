// Command gridpath searches a grid with Dijkstra, A*, BFS or DFS and prints
// the path overlay and statistics, optionally replaying the search in the
// terminal.
//
// Usage:
//
//	gridpath [-config gridpath.toml] [-scenario maze.yaml] [-algorithm astar|all] [-seed n] [-tui]
//
// Without -scenario a random grid is generated from the [random] section of
// the configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/runner"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// job is everything needed to run the searches once flags, config and
// scenario have been merged.
type job struct {
	name     string
	grid     *grid.Grid
	algs     []search.Algorithm
	maxDepth int
	workers  int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML configuration file")
	scenarioPath := fs.String("scenario", "", "path to a YAML scenario (overrides the random grid)")
	algorithm := fs.String("algorithm", "", "dijkstra, astar, bfs, dfs or all (overrides config and scenario)")
	seed := fs.Int64("seed", 0, "random grid seed (overrides config)")
	tui := fs.Bool("tui", false, "replay each search on the terminal")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "gridpath: %v\n", err)
			return exitError
		}
	}
	if set["algorithm"] {
		cfg.Algorithm = *algorithm
	}
	if set["seed"] {
		cfg.Random.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitUsage
	}

	logger := logging.New(cfg.Log.Format, cfg.Log.Level, stderr)

	j, err := prepare(cfg, *scenarioPath, set["algorithm"], logger)
	if err != nil {
		logger.Error("prepare grid", "err", err)
		return exitError
	}

	results, err := runner.Compare(ctx, j.grid, j.algs, j.workers,
		search.WithMaxDepth(j.maxDepth),
		search.WithLogger(logger),
	)
	if err != nil {
		logger.Error("search failed", "grid", j.name, "err", err)
		return exitError
	}

	if err := report(stdout, j, results, logger); err != nil {
		logger.Error("write report", "err", err)
		return exitError
	}

	if *tui {
		if err := replay(ctx, j.grid, results, cfg.Animation); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("terminal replay", "err", err)
			return exitError
		}
	}
	return exitOK
}

// prepare builds the grid and the algorithm list from a scenario file or,
// when none is given, from the random section of cfg.
func prepare(cfg config.Config, scenarioPath string, algorithmFlag bool, logger *slog.Logger) (job, error) {
	algs, err := cfg.Algorithms()
	if err != nil {
		return job{}, err
	}
	j := job{algs: algs, maxDepth: cfg.MaxDepth, workers: cfg.Workers}

	if scenarioPath == "" {
		g, err := grid.New(cfg.Random.Rows, cfg.Random.Cols)
		if err != nil {
			return job{}, err
		}
		rng := rand.New(rand.NewSource(cfg.Random.Seed))
		added, err := g.ScatterObstacles(rng, cfg.Random.Density)
		if err != nil {
			return job{}, err
		}
		if err := g.PlaceRandomEndpoints(rng); err != nil {
			return job{}, err
		}
		j.name = fmt.Sprintf("random %dx%d seed %d", cfg.Random.Rows, cfg.Random.Cols, cfg.Random.Seed)
		j.grid = g
		logger.Info("random grid ready", "rows", g.Rows(), "cols", g.Cols(), "obstacles", added, "seed", cfg.Random.Seed)
		logReachability(logger, g)
		return j, nil
	}

	s, err := scenario.Load(scenarioPath)
	if err != nil {
		return job{}, err
	}
	g, err := s.Grid()
	if err != nil {
		return job{}, err
	}
	if !algorithmFlag {
		fromFile, err := s.Search()
		if err != nil {
			return job{}, err
		}
		if len(fromFile) > 0 {
			j.algs = fromFile
		}
	}
	if s.MaxDepth > 0 {
		j.maxDepth = s.MaxDepth
	}
	j.name = s.Name
	j.grid = g
	logger.Info("scenario loaded", "name", s.Name, "rows", g.Rows(), "cols", g.Cols(), "algorithms", len(j.algs))
	logReachability(logger, g)
	return j, nil
}

// logReachability records how the free cells split into regions and
// whether the goal can be reached at all.
func logReachability(logger *slog.Logger, g *grid.Grid) {
	start, okS := g.Start()
	goal, okG := g.Goal()
	if !okS || !okG {
		return
	}
	logger.Debug("grid regions", "regions", len(g.Components()), "goal_reachable", g.Connected(start, goal))
}

// report prints the overlay and stats panel of every result.
func report(w io.Writer, j job, results []search.Result, logger *slog.Logger) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if res.Found {
			if err := route.Verify(j.grid, res.Path); err != nil {
				logger.Warn("path failed verification", "algorithm", res.Algorithm.String(), "err", err)
			}
		} else {
			logger.Info("no path found", "algorithm", res.Algorithm.String(), "visited", res.Metrics.NodesVisited)
		}
		if _, err := fmt.Fprintf(w, "== %s: %s ==\n%s\n", j.name, res.Algorithm, render.Text(j.grid, res)); err != nil {
			return err
		}
		if err := metrics.Report(w, res.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// replay animates each result on a fresh terminal screen and waits for a
// key between them.
func replay(ctx context.Context, g *grid.Grid, results []search.Result, anim config.Animation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	keys := make(chan struct{}, 1)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					close(keys)
					return
				}
				select {
				case keys <- struct{}{}:
				default:
				}
			}
		}
	}()

	for _, res := range results {
		screen.Clear()
		if err := render.Animate(ctx, screen, g, res, anim.Step()); err != nil {
			return err
		}
		render.DrawText(screen, 0, g.Rows()+2, tcell.StyleDefault, "press any key (q to quit)")
		screen.Show()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-keys:
			if !ok {
				return nil
			}
		}
	}
	return nil
}
