package generator

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tubegen/mitm"
)

// GenerateBatch generates count puzzles with up to Options.Workers
// goroutines sharing idx read-only. Puzzle i draws from its own RNG stream
// derived from the base seed and i, so results[i] does not depend on
// scheduling. The first failure cancels the remaining puzzles.
func GenerateBatch(ctx context.Context, idx *mitm.Index, width, height, count int, opts ...Option) ([]*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkInputs(idx, width, height, o); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmtInvalid("count %d is negative", count)
	}
	parent := parentSeed(o)

	results := make([]*Result, count)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Workers, 1))
	for i := 0; i < count; i++ {
		job := o
		job.Rand = rand.New(rand.NewSource(deriveSeed(parent, uint64(i))))
		job.Logger = o.Logger.With("puzzle", i)
		g.Go(func() error {
			res, err := newRunner(idx, width, height, job, job.Rand).run(gCtx)
			if err != nil {
				return fmt.Errorf("puzzle %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
