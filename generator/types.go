package generator

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/tubegen/gridgraph"
)

// Sentinel errors returned by Generate and GenerateBatch.
var (
	// ErrInvalidOptions indicates a nil index, a non-positive size or
	// inconsistent limits.
	ErrInvalidOptions = errors.New("generator: invalid options")
	// ErrGenerationFailed indicates MaxAttempts restarts without an accepted grid.
	ErrGenerationFailed = errors.New("generator: attempt budget exhausted")
)

// Retry signals. They restart an attempt and never leave this package
// except wrapped inside ErrGenerationFailed.
var (
	errBorderRejected        = errors.New("border wall does not fit")
	errInsertionCapExhausted = errors.New("loop insertions exhausted")
	errPairBoundExceeded     = errors.New("pair count above maximum")
)

// Result is an accepted puzzle.
type Result struct {
	// ID identifies the puzzle. It is drawn from the attempt's RNG, so it is
	// reproducible along with the grid.
	ID uuid.UUID
	// Grid is the accepted grid at puzzle resolution (Width×Height).
	Grid *gridgraph.Grid
	// Pairs is the number of endpoint pairs.
	Pairs int
	// Attempts counts the attempts started, the accepted one included.
	Attempts int
	// Insertions counts the loops patched into the accepted attempt.
	Insertions int
}
