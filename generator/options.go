package generator

import (
	"log/slog"
	"math/rand"
)

// Defaults for Options.
const (
	DefaultMaxPairs    = 1000
	DefaultLoopTries   = 1000
	DefaultMaxAttempts = 10000
)

// Option configures Generate and GenerateBatch.
type Option func(*Options)

// Options holds the generation limits and collaborators.
type Options struct {
	// MinPairs and MaxPairs bound the accepted endpoint-pair count.
	MinPairs int
	MaxPairs int

	// LoopTries bounds the loop insertions of one attempt.
	LoopTries int

	// MaxAttempts bounds the restarts of one puzzle.
	MaxAttempts int

	// Workers bounds the concurrency of GenerateBatch. Zero or less means one.
	Workers int

	// Seed seeds the RNG when Rand is nil; 0 selects a fixed default seed.
	Seed int64

	// Rand, if non-nil, is used instead of Seed. It must not be shared
	// with another goroutine.
	Rand *rand.Rand

	// Logger receives restart reasons at Debug and accepted puzzles at Info.
	Logger *slog.Logger
}

// DefaultOptions returns:
//   - MinPairs 0, MaxPairs DefaultMaxPairs
//   - LoopTries DefaultLoopTries, MaxAttempts DefaultMaxAttempts
//   - one worker, seed 0, a discarding logger
func DefaultOptions() Options {
	return Options{
		MinPairs:    0,
		MaxPairs:    DefaultMaxPairs,
		LoopTries:   DefaultLoopTries,
		MaxAttempts: DefaultMaxAttempts,
		Workers:     1,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithPairs requires exactly n endpoint pairs.
func WithPairs(n int) Option {
	return func(o *Options) {
		o.MinPairs = n
		o.MaxPairs = n
	}
}

// WithMinPairs sets the lower pair bound.
func WithMinPairs(n int) Option {
	return func(o *Options) {
		o.MinPairs = n
	}
}

// WithMaxPairs sets the upper pair bound.
func WithMaxPairs(n int) Option {
	return func(o *Options) {
		o.MaxPairs = n
	}
}

// WithLoopTries sets the per-attempt loop insertion budget.
func WithLoopTries(n int) Option {
	return func(o *Options) {
		o.LoopTries = n
	}
}

// WithMaxAttempts sets the restart budget.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		o.MaxAttempts = n
	}
}

// WithWorkers sets the GenerateBatch concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithSeed seeds a fresh RNG and drops any Rand set before.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand uses rng directly. A nil rng has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithLogger installs a logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) validate() error {
	switch {
	case o.MinPairs < 0:
		return fmtInvalid("min pairs %d is negative", o.MinPairs)
	case o.MaxPairs < o.MinPairs:
		return fmtInvalid("max pairs %d below min pairs %d", o.MaxPairs, o.MinPairs)
	case o.LoopTries < 0:
		return fmtInvalid("loop tries %d is negative", o.LoopTries)
	case o.MaxAttempts <= 0:
		return fmtInvalid("max attempts %d must be positive", o.MaxAttempts)
	}
	return nil
}
