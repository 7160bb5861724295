package mitm

import (
	"errors"

	"github.com/katalvlaran/tubegen/walk"
)

// Sentinel errors for index construction and random assembly.
var (
	// ErrInvalidPrice indicates a non-positive turn or straight price.
	ErrInvalidPrice = errors.New("mitm: step prices must be positive")
	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("mitm: budget must be non-negative")
	// ErrAttemptsExhausted indicates a random assembly gave up.
	ErrAttemptsExhausted = errors.New("mitm: attempt cap exhausted")
)

// DefaultMaxAttempts bounds every Rand* call when Config.MaxAttempts is zero.
const DefaultMaxAttempts = 100000

// Config controls enumeration cost and random assembly limits.
type Config struct {
	// TurnPrice is the cost of a Left or Right step.
	TurnPrice int `yaml:"turn_price"`
	// StraightPrice is the cost of a Forward step.
	StraightPrice int `yaml:"straight_price"`
	// Budget bounds the accumulated cost of every enumerated path.
	Budget int `yaml:"budget"`
	// MaxAttempts bounds the restarts of RandPath, RandPath2 and RandLoop.
	// Zero selects DefaultMaxAttempts.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultConfig returns turn price 2, straight price 1 and budget 6.
func DefaultConfig() Config {
	return Config{
		TurnPrice:     2,
		StraightPrice: 1,
		Budget:        6,
		MaxAttempts:   DefaultMaxAttempts,
	}
}

// DefaultConfigFor sizes the budget for a width×height puzzle:
// min(20, max(width, height, 6)).
func DefaultConfigFor(width, height int) Config {
	cfg := DefaultConfig()
	cfg.Budget = min(20, max(width, height, 6))
	return cfg
}

// Entry is one enumerated path and the pose it ends in when walked from
// walk.Origin.
type Entry struct {
	Path walk.Path
	End  walk.Pose
}

// Chirality selects the turning sense of a random loop.
type Chirality int

const (
	// Either accepts both senses.
	Either Chirality = 0
	// Clockwise requires winding +4.
	Clockwise Chirality = 1
	// CounterClockwise requires winding −4.
	CounterClockwise Chirality = -1
)

// String implements fmt.Stringer.
func (c Chirality) String() string {
	switch c {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "either"
	}
}

// Stats summarizes an Index.
type Stats struct {
	Entries       int `yaml:"entries" json:"entries"`
	Poses         int `yaml:"poses" json:"poses"`
	LongestPath   int `yaml:"longest_path" json:"longest_path"`
	ForwardSteps  int `yaml:"forward_steps" json:"forward_steps"`
	LeftSteps     int `yaml:"left_steps" json:"left_steps"`
	RightSteps    int `yaml:"right_steps" json:"right_steps"`
	Budget        int `yaml:"budget" json:"budget"`
	TurnPrice     int `yaml:"turn_price" json:"turn_price"`
	StraightPrice int `yaml:"straight_price" json:"straight_price"`
}
