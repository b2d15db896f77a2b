package search_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/search"
)

type cell = grid.Cell

func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	return g
}

// openGrid5 is the 5×5 obstacle-free floor with Start=(0,0), Goal=(4,4).
func openGrid5(t testing.TB) *grid.Grid {
	return mustParse(t,
		"S....",
		".....",
		".....",
		".....",
		"....G",
	)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestSearch_Errors verifies that invalid inputs and options are rejected
// before any cell is expanded.
func TestSearch_Errors(t *testing.T) {
	_, err := search.Search(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g := openGrid5(t)
	_, err = search.Search(g, search.Algorithm(42))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Search(g, search.BFS, search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Search(g, search.AStar, search.WithHeuristic(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSearch_ValidationBeforeExpansion checks every grid rejection for every
// algorithm and that the visited count stays 0.
func TestSearch_ValidationBeforeExpansion(t *testing.T) {
	noStart := mustParse(t, "...", "..G")
	noGoal := mustParse(t, "S..", "...")
	same, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, same.Set(cell{Row: 1, Col: 1}, grid.Start))
	require.NoError(t, same.Set(cell{Row: 1, Col: 1}, grid.Goal))

	cases := []struct {
		name string
		g    *grid.Grid
		want error
	}{
		{"MissingStart", noStart, grid.ErrMissingStart},
		{"MissingGoal", noGoal, grid.ErrMissingGoal},
		{"StartEqualsGoal", same, grid.ErrStartEqualsGoal},
	}
	for _, tc := range cases {
		for _, alg := range search.Algorithms() {
			t.Run(tc.name+"/"+alg.String(), func(t *testing.T) {
				visits := 0
				res, err := search.Search(tc.g, alg, search.WithOnVisit(func(grid.Cell, int) error {
					visits++
					return nil
				}))
				require.ErrorIs(t, err, tc.want)
				assert.Zero(t, visits)
				assert.Zero(t, res.Metrics.NodesVisited)
				assert.Nil(t, res.Path)
			})
		}
	}
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestSearch_OpenGrid covers the 5×5 open floor: every optimal algorithm
// returns a 9-cell path and A* ≤ Dijkstra ≤ BFS in expansions.
func TestSearch_OpenGrid(t *testing.T) {
	g := openGrid5(t)
	results := map[search.Algorithm]search.Result{}
	for _, alg := range search.Algorithms() {
		res, err := search.Search(g, alg)
		require.NoError(t, err, alg)
		require.True(t, res.Found, alg)
		require.NoError(t, route.Verify(g, res.Path), alg)
		results[alg] = res
	}

	for _, alg := range []search.Algorithm{search.Dijkstra, search.AStar, search.BFS} {
		assert.Len(t, results[alg].Path, 9, alg)
		assert.Equal(t, 9, results[alg].Metrics.PathLength, alg)
		assert.True(t, results[alg].Optimal(), alg)
	}
	assert.LessOrEqual(t, results[search.AStar].Metrics.NodesVisited, results[search.Dijkstra].Metrics.NodesVisited)
	assert.LessOrEqual(t, results[search.Dijkstra].Metrics.NodesVisited, results[search.BFS].Metrics.NodesVisited)
	assert.Equal(t, 25, results[search.BFS].Metrics.NodesVisited)
	assert.False(t, results[search.DFS].Optimal())
}

// TestSearch_OpenGridExactPaths pins the deterministic output: the row/col
// tie-break and the up/right/down/left neighbour order make every algorithm
// run along the top row and down the right column.
func TestSearch_OpenGridExactPaths(t *testing.T) {
	g := openGrid5(t)
	want := []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 1, Col: 4}, {Row: 2, Col: 4}, {Row: 3, Col: 4}, {Row: 4, Col: 4}}

	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := search.Search(g, alg)
			require.NoError(t, err)
			assert.Equal(t, want, res.Path)
		})
	}

	dfs, err := search.Search(g, search.DFS)
	require.NoError(t, err)
	assert.Equal(t, want, dfs.Order, "DFS dives straight to the goal")
	assert.Equal(t, 9, dfs.Metrics.NodesVisited)
}

// TestSearch_ForcedCorridor uses a 3×3 grid whose column 1 is walled off
// except row 0, so every path must pass (0,1).
//
//	...
//	.#.
//	S#G
func TestSearch_ForcedCorridor(t *testing.T) {
	g := mustParse(t,
		"...",
		".#.",
		"S#G",
	)
	want := []cell{{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := search.Search(g, alg)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Contains(t, res.Path, cell{Row: 0, Col: 1})
			assert.Equal(t, want, res.Path)
		})
	}
}

// TestSearch_NoPath encloses the goal; every algorithm reports the
// "no path" value and expands exactly the cells reachable from Start.
//
//	S...
//	....
//	..##
//	..#G
func TestSearch_NoPath(t *testing.T) {
	g := mustParse(t,
		"S...",
		"....",
		"..##",
		"..#G",
	)
	const reachable = 12
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := search.Search(g, alg)
			require.NoError(t, err, "no path is a result, not an error")
			assert.True(t, res.NoPath())
			assert.Nil(t, res.Path)
			assert.Equal(t, reachable, res.Metrics.NodesVisited)
			assert.Zero(t, res.Metrics.PathLength)
			assert.False(t, res.Optimal())
		})
	}
}

// TestSearch_AStarPrunes shows the heuristic paying off when the goal sits
// in the middle of an open floor.
func TestSearch_AStarPrunes(t *testing.T) {
	g := mustParse(t,
		".......",
		".......",
		".......",
		"S..G...",
		".......",
		".......",
		".......",
	)
	astar, err := search.Search(g, search.AStar)
	require.NoError(t, err)
	dijkstra, err := search.Search(g, search.Dijkstra)
	require.NoError(t, err)

	assert.Equal(t, 4, astar.Metrics.NodesVisited)
	assert.Less(t, astar.Metrics.NodesVisited, dijkstra.Metrics.NodesVisited)
	assert.Equal(t, astar.Metrics.PathLength, dijkstra.Metrics.PathLength)
}

//----------------------------------------------------------------------------//
// Predecessor semantics
//----------------------------------------------------------------------------//

// TestSearch_CostImprovementWins holds (1,1) back with a heuristic so the
// cell behind it, (1,2), is first discovered via the top row. When (1,1) is
// finally expanded it offers a cheaper route and the predecessor of (1,2) is
// overwritten.
//
//	....
//	S..G
func TestSearch_CostImprovementWins(t *testing.T) {
	g := mustParse(t,
		"....",
		"S..G",
	)
	held := func(c, _ grid.Cell) int {
		if c == (cell{Row: 1, Col: 1}) {
			return 3
		}
		return 0
	}
	discoveries := map[cell]int{}
	res, err := search.Search(g, search.AStar,
		search.WithHeuristic(held),
		search.WithOnDiscover(func(c, _ grid.Cell) { discoveries[c]++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, []cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, res.Path)
	assert.Equal(t, 2, discoveries[cell{Row: 1, Col: 2}])
	assert.Equal(t, 2, discoveries[cell{Row: 1, Col: 3}])
	assert.True(t, res.CustomHeuristic)
	assert.False(t, res.Optimal(), "a supplied heuristic is not known to be admissible")
	assert.False(t, res.Summary().Optimal)
}

// TestSearch_DFSFirstWriteWins: the goal is discovered straight from Start,
// pushed to the bottom of the stack, and keeps Start as its predecessor even
// though the dive later reaches its other neighbour (2,1).
//
//	....
//	S...
//	G...
func TestSearch_DFSFirstWriteWins(t *testing.T) {
	g := mustParse(t,
		"....",
		"S...",
		"G...",
	)
	bfs, err := search.Search(g, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, []cell{{Row: 1, Col: 0}, {Row: 2, Col: 0}}, bfs.Path)
	assert.Equal(t, 4, bfs.Metrics.NodesVisited)

	dfs, err := search.Search(g, search.DFS)
	require.NoError(t, err)
	assert.Equal(t, []cell{{Row: 1, Col: 0}, {Row: 2, Col: 0}}, dfs.Path)
	assert.Equal(t, 12, dfs.Metrics.NodesVisited)
	assert.Contains(t, dfs.Order[:len(dfs.Order)-1], cell{Row: 2, Col: 1})
	assert.Equal(t, cell{Row: 2, Col: 0}, dfs.Order[len(dfs.Order)-1])
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

// TestSearch_MaxDepth verifies depth-limited search on a 1×5 corridor.
func TestSearch_MaxDepth(t *testing.T) {
	g := mustParse(t, "S...G")

	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			short, err := search.Search(g, alg, search.WithMaxDepth(3))
			require.NoError(t, err)
			assert.True(t, short.NoPath())
			assert.Equal(t, 4, short.Metrics.NodesVisited)
			assert.Equal(t, 3, short.DepthLimit)

			enough, err := search.Search(g, alg, search.WithMaxDepth(4))
			require.NoError(t, err)
			assert.True(t, enough.Found)
			assert.Len(t, enough.Path, 5)
			assert.False(t, enough.Optimal(), "a depth cap voids the optimality guarantee")
		})
	}
}

// TestSearch_MaxDepthDetour: DFS dives right and down first and expands
// (0,1) at depth 4, the limit, before the direct route along row 0 is
// tried. Reaching (0,1) again at depth 2 re-opens it, and the goal three
// steps away is found within the limit.
//
//	G..S.
//	.....
func TestSearch_MaxDepthDetour(t *testing.T) {
	g := mustParse(t,
		"G..S.",
		".....",
	)
	res, err := search.Search(g, search.DFS, search.WithMaxDepth(4))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []cell{{Row: 0, Col: 3}, {Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, res.Path)
	require.NoError(t, route.Verify(g, res.Path))

	assert.Equal(t, []cell{
		{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 1, Col: 4}, {Row: 1, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0},
		{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0},
	}, res.Order, "(0,1) is expanded once by the dive and once by the direct route")
	assert.Equal(t, 11, res.Metrics.NodesVisited)

	unlimited, err := search.Search(g, search.DFS)
	require.NoError(t, err)
	assert.Greater(t, len(unlimited.Path), len(res.Path), "without a limit DFS keeps its first route")
}

// TestSearch_OnVisitAbort ensures a hook error stops the search and is wrapped.
func TestSearch_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := openGrid5(t)

	var seen []cell
	res, err := search.Search(g, search.BFS, search.WithOnVisit(func(c grid.Cell, _ int) error {
		seen = append(seen, c)
		if len(seen) == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Metrics.NodesVisited)
	assert.Equal(t, seen, res.Order)
}

// TestSearch_OnDiscover counts frontier insertions against NodesExplored.
func TestSearch_OnDiscover(t *testing.T) {
	g := openGrid5(t)
	for _, alg := range search.Algorithms() {
		discovered := 0
		res, err := search.Search(g, alg, search.WithOnDiscover(func(c, from grid.Cell) {
			assert.Equal(t, 1, grid.Manhattan(c, from))
			discovered++
		}))
		require.NoError(t, err)
		assert.Equal(t, discovered+1, res.Metrics.NodesExplored, alg)
	}
}

// TestSearch_Heuristic shows that a zero heuristic makes A* behave like Dijkstra.
func TestSearch_Heuristic(t *testing.T) {
	g := mustParse(t,
		"S.#....",
		"..#.##.",
		"....#.G",
	)
	zero := func(grid.Cell, grid.Cell) int { return 0 }
	astar, err := search.Search(g, search.AStar, search.WithHeuristic(zero))
	require.NoError(t, err)
	dij, err := search.Search(g, search.Dijkstra)
	require.NoError(t, err)

	assert.Equal(t, dij.Path, astar.Path)
	assert.Equal(t, dij.Order, astar.Order)
	assert.True(t, dij.Optimal())
	assert.False(t, astar.Optimal())

	// other algorithms ignore the heuristic and keep their guarantee
	bfs, err := search.Search(g, search.BFS, search.WithHeuristic(zero))
	require.NoError(t, err)
	assert.False(t, bfs.CustomHeuristic)
	assert.True(t, bfs.Optimal())
}

// TestSearch_Clock verifies elapsed time is taken from the injected clock.
func TestSearch_Clock(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 3 * time.Millisecond)
	}
	res, err := search.Search(openGrid5(t), search.AStar, search.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 3*time.Millisecond, res.Metrics.Elapsed)
}

// TestSearch_Idempotent runs each algorithm twice on the same grid.
func TestSearch_Idempotent(t *testing.T) {
	g := mustParse(t,
		"S..#......",
		".#.#.####.",
		".#...#....",
		".####.#.#.",
		"......#..G",
	)
	before := g.String()
	for _, alg := range search.Algorithms() {
		a, err := search.Search(g, alg)
		require.NoError(t, err)
		b, err := search.Search(g, alg)
		require.NoError(t, err)

		assert.Equal(t, a.Path, b.Path, alg)
		assert.Equal(t, a.Order, b.Order, alg)
		assert.Equal(t, a.Metrics.NodesVisited, b.Metrics.NodesVisited, alg)
		assert.Equal(t, a.Metrics.NodesExplored, b.Metrics.NodesExplored, alg)
	}
	assert.Equal(t, before, g.String(), "search must not mutate the grid")
}

//----------------------------------------------------------------------------//
// Algorithm names
//----------------------------------------------------------------------------//

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dijkstra": search.Dijkstra,
		"UCS":      search.Dijkstra,
		"astar":    search.AStar,
		"A*":       search.AStar,
		" bfs ":    search.BFS,
		"DFS":      search.DFS,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("dls")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	assert.Equal(t, "A*", search.AStar.String())
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}
