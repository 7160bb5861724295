package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/tubegen/gridgraph"
	"github.com/katalvlaran/tubegen/mitm"
	"github.com/katalvlaran/tubegen/walk"
)

// Generate assembles one width×height puzzle from idx.
//
// Returns ErrInvalidOptions for a nil idx, a non-positive size or bad limits,
// ErrGenerationFailed (wrapping the last restart reason) when MaxAttempts
// attempts were all rejected, and ctx.Err() when ctx is cancelled.
func Generate(ctx context.Context, idx *mitm.Index, width, height int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkInputs(idx, width, height, o); err != nil {
		return nil, err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	return newRunner(idx, width, height, o, rng).run(ctx)
}

func checkInputs(idx *mitm.Index, width, height int, o Options) error {
	if idx == nil {
		return fmtInvalid("nil index")
	}
	if width <= 0 || height <= 0 {
		return fmtInvalid("size %dx%d", width, height)
	}
	return o.validate()
}

func fmtInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOptions}, args...)...)
}

// runner owns the working grid of one puzzle.
type runner struct {
	idx           *mitm.Index
	width, height int
	opts          Options
	rng           *rand.Rand
	log           *slog.Logger
	grid          *gridgraph.Grid
}

func newRunner(idx *mitm.Index, width, height int, o Options, rng *rand.Rand) *runner {
	grid, _ := gridgraph.NewForPuzzle(width, height)
	return &runner{
		idx:    idx,
		width:  width,
		height: height,
		opts:   o,
		rng:    rng,
		log:    o.Logger,
		grid:   grid,
	}
}

func (r *runner) run(ctx context.Context) (*Result, error) {
	var last error
	for attempt := 1; attempt <= r.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.attempt(ctx)
		if err == nil {
			res.Attempts = attempt
			res.ID, _ = uuid.NewRandomFromReader(r.rng)
			r.log.Info("puzzle accepted",
				"width", r.width, "height", r.height,
				"pairs", res.Pairs, "attempts", attempt, "insertions", res.Insertions)
			return res, nil
		}
		if !isRetry(err) {
			return nil, err
		}
		r.log.Debug("attempt restarted", "attempt", attempt, "reason", err)
		last = err
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, r.opts.MaxAttempts, last)
}

func isRetry(err error) bool {
	return errors.Is(err, errBorderRejected) ||
		errors.Is(err, errInsertionCapExhausted) ||
		errors.Is(err, errPairBoundExceeded) ||
		errors.Is(err, mitm.ErrAttemptsExhausted)
}

// attempt runs the state machine once from an empty grid.
func (r *runner) attempt(ctx context.Context) (*Result, error) {
	r.grid.Clear()
	if err := r.drawBorders(); err != nil {
		return nil, err
	}
	if small, pairs, ok := r.ready(); ok {
		return &Result{Grid: small, Pairs: pairs}, nil
	}
	return r.insertLoops(ctx)
}

// drawBorders draws the left wall from the top-left corner and the right
// wall from the bottom-right corner, each ending H cells along and H cells
// across in its own frame.
func (r *runner) drawBorders() error {
	w, h := r.width, r.height
	target := walk.Vec{X: h, Y: h}

	left, err := r.idx.RandPath2(r.rng, target, walk.South)
	if err != nil {
		return err
	}
	origin := walk.Vec{X: 0, Y: 0}
	if !r.grid.TestPath(left, origin, walk.North) {
		return fmt.Errorf("%w: left %s", errBorderRejected, left)
	}
	if err := r.grid.DrawPath(left, origin, walk.North, false); err != nil {
		return err
	}
	r.grid.Set(walk.Vec{X: 0, Y: 0}, gridgraph.Backslash)
	r.grid.Set(walk.Vec{X: 0, Y: 2 * h}, gridgraph.Slash)

	right, err := r.idx.RandPath2(r.rng, target, walk.South)
	if err != nil {
		return err
	}
	origin = walk.Vec{X: 2 * w, Y: 2 * h}
	if !r.grid.TestPath(right, origin, walk.South) {
		return fmt.Errorf("%w: right %s", errBorderRejected, right)
	}
	if err := r.grid.DrawPath(right, origin, walk.South, false); err != nil {
		return err
	}
	r.grid.Set(walk.Vec{X: 2 * w, Y: 0}, gridgraph.Slash)
	r.grid.Set(walk.Vec{X: 2 * w, Y: 2 * h}, gridgraph.Backslash)
	return nil
}

// insertLoops patches random loops over straight tube segments until the
// grid is accepted, the pair count overshoots or LoopTries runs out.
// A horizontal segment takes a clockwise loop, a vertical one a
// counter-clockwise loop.
func (r *runner) insertLoops(ctx context.Context) (*Result, error) {
	tubes := r.grid.MakeTubes()
	inserted := 0
	for try := 0; try < r.opts.LoopTries; try++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		at := walk.Vec{X: 2 * r.rng.Intn(r.width), Y: 2 * r.rng.Intn(r.height)}
		var chirality mitm.Chirality
		switch tubes.Grid.At(at) {
		case gridgraph.TubeHorizontal:
			chirality = mitm.Clockwise
		case gridgraph.TubeVertical:
			chirality = mitm.CounterClockwise
		default:
			continue
		}

		loop, err := r.idx.RandLoop(r.rng, chirality)
		if err != nil {
			return nil, err
		}
		if !r.grid.TestPath(loop, at, walk.North) {
			continue
		}
		if err := r.grid.ClearPath(loop, at); err != nil {
			return nil, err
		}
		if err := r.grid.DrawPath(loop, at, walk.North, true); err != nil {
			return nil, err
		}
		inserted++
		tubes = r.grid.MakeTubes()

		small, pairs, ok := r.ready()
		if pairs > r.opts.MaxPairs {
			return nil, fmt.Errorf("%w: %d > %d", errPairBoundExceeded, pairs, r.opts.MaxPairs)
		}
		if ok {
			return &Result{Grid: small, Pairs: pairs, Insertions: inserted}, nil
		}
	}
	return nil, fmt.Errorf("%w: %d tries", errInsertionCapExhausted, r.opts.LoopTries)
}

// ready runs the acceptance test on the shrunk grid.
func (r *runner) ready() (*gridgraph.Grid, int, bool) {
	small := r.grid.Shrink()
	tubes := small.MakeTubes()
	pairs := tubes.Pairs()
	ok := pairs >= r.opts.MinPairs && pairs <= r.opts.MaxPairs &&
		!tubes.HasLoops() && !tubes.HasPair() && !tubes.HasTriple()
	return small, pairs, ok
}
