package runner

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrNoAlgorithms is returned by Compare when algs is empty.
var ErrNoAlgorithms = errors.New("runner: no algorithms to compare")

// Outcome is what Go delivers: the search result or the error that ended it.
type Outcome struct {
	Result search.Result
	Err    error
}

// Go starts alg on a snapshot of g and returns a channel that yields
// exactly one Outcome and is then closed.
//
// If ctx is done before the search finishes, the Outcome carries ctx.Err()
// and the partially computed result is dropped.
func Go(ctx context.Context, g *grid.Grid, alg search.Algorithm, opts ...search.Option) <-chan Outcome {
	out := make(chan Outcome, 1)
	if err := ctx.Err(); err != nil {
		out <- Outcome{Result: search.Result{Algorithm: alg}, Err: err}
		close(out)
		return out
	}
	if g == nil {
		out <- Outcome{Result: search.Result{Algorithm: alg}, Err: search.ErrNilGrid}
		close(out)
		return out
	}

	snap := g.Clone()
	done := make(chan Outcome, 1)
	go func() {
		res, err := search.Search(snap, alg, opts...)
		done <- Outcome{Result: res, Err: err}
	}()

	go func() {
		defer close(out)
		select {
		case o := <-done:
			out <- o
		case <-ctx.Done():
			out <- Outcome{Result: search.Result{Algorithm: alg}, Err: ctx.Err()}
		}
	}()
	return out
}

// Compare runs every algorithm in algs against its own clone of g, at most
// limit at a time (limit <= 0 means no cap). Results are returned in the
// order of algs. The first failing search cancels the rest and its error
// is returned.
func Compare(ctx context.Context, g *grid.Grid, algs []search.Algorithm, limit int, opts ...search.Option) ([]search.Result, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	results := make([]search.Result, len(algs))
	for i, alg := range algs {
		snap := g.Clone()
		eg.Go(func() error {
			o := <-Go(ctx, snap, alg, opts...)
			if o.Err != nil {
				return fmt.Errorf("runner: %s: %w", alg, o.Err)
			}
			results[i] = o.Result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
