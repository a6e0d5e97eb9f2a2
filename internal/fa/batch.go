package fa

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AcceptsAll matches every input against d on at most workers goroutines
// (GOMAXPROCS when workers < 1). Results are in input order. Cancellation
// is observed between inputs, never inside a single match.
func AcceptsAll(ctx context.Context, d Design, inputs []string, workers int) ([]bool, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]bool, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.Accepts(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
