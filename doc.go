// Package gridpath finds and visualises shortest paths on 2D occupancy
// grids.
//
// A grid is a rectangle of free and obstacle cells with one Start and one
// Goal marker. Movement is orthogonal with unit cost. Four strategies share
// a single expansion loop and differ only in how the frontier is ordered:
//
//	Dijkstra: cost-so-far priority queue (uniform-cost search)
//	A*      : cost-so-far plus Manhattan distance
//	BFS     : FIFO queue
//	DFS     : LIFO stack, not guaranteed shortest
//
// Subpackages:
//
//	grid/    : cell model, parsing, random obstacles, connected regions
//	frontier/: priority queue, FIFO and LIFO frontiers
//	search/  : the engine, options and results
//	route/   : path reconstruction and verification
//	metrics/ : per-search counters and the stats report
//	runner/  : background and concurrent searches
//	scenario/: YAML scenario files
//	config/  : TOML CLI configuration
//	logging/ : slog logger construction
//	render/  : text overlay and tcell replay
//	cmd/gridpath: the command-line tool
//
// Quick example:
//
//	g, _ := grid.Parse([]string{
//		"S..#",
//		".#..",
//		"...G",
//	})
//	res, err := search.Search(g, search.AStar)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(render.Text(g, res))
//	_ = metrics.Report(os.Stdout, res.Summary())
package gridpath
