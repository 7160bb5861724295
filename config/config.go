// Package config loads and validates tubegen.yaml.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tubegen/generator"
	"github.com/katalvlaran/tubegen/label"
	"github.com/katalvlaran/tubegen/mitm"
)

// Config represents the tubegen.yaml file. Zero values are filled in by
// ApplyDefaults; command-line flags override what the file sets.
type Config struct {
	// Puzzle describes the requested puzzle.
	Puzzle PuzzleConfig `yaml:"puzzle"`
	// Search sets the path index prices and budget.
	Search SearchConfig `yaml:"search"`
	// Limits bounds the randomized retry loops.
	Limits LimitsConfig `yaml:"limits"`
	// Output selects how puzzles are printed.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Seed seeds generation; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`
	// Count is the number of puzzles to generate.
	Count int `yaml:"count"`
	// Workers bounds concurrent generation.
	Workers int `yaml:"workers"`
}

// PuzzleConfig is the puzzle size and the accepted pair range.
type PuzzleConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MinPairs int `yaml:"min_pairs"`
	MaxPairs int `yaml:"max_pairs"`
}

// SearchConfig configures the path index. A zero Budget is sized from the
// puzzle: min(20, max(width, height, 6)).
type SearchConfig struct {
	TurnPrice     int `yaml:"turn_price"`
	StraightPrice int `yaml:"straight_price"`
	Budget        int `yaml:"budget"`
}

// LimitsConfig bounds the retry loops.
type LimitsConfig struct {
	// LoopTries bounds loop insertions per attempt.
	LoopTries int `yaml:"loop_tries"`
	// MaxAttempts bounds restarts per puzzle.
	MaxAttempts int `yaml:"max_attempts"`
	// PathAttempts bounds every random path or loop assembly.
	PathAttempts int `yaml:"path_attempts"`
}

// OutputConfig configures printing.
type OutputConfig struct {
	// Format is one of text, scheme, json, raw.
	Format string `yaml:"format"`
	// Palette lists tube colours as "#rrggbb"; empty selects the default.
	Palette []string `yaml:"palette"`
	// Filler is the scheme rune for cells that are not tube ends.
	Filler string `yaml:"filler"`
	// LabelOffset shifts every label rune written to a scheme.
	LabelOffset *int `yaml:"label_offset"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path; empty logs to stderr.
	Path string `yaml:"path"`
}

// Output formats.
const (
	FormatText   = "text"
	FormatScheme = "scheme"
	FormatJSON   = "json"
	FormatRaw    = "raw"
)

var validFormats = map[string]bool{
	FormatText:   true,
	FormatScheme: true,
	FormatJSON:   true,
	FormatRaw:    true,
}

// Default returns a Config for one 6×6 puzzle with three tubes.
func Default() *Config {
	cfg := &Config{
		Puzzle: PuzzleConfig{Width: 6, Height: 6, MinPairs: 3, MaxPairs: 3},
	}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Puzzle.MaxPairs == 0 {
		config.Puzzle.MaxPairs = generator.DefaultMaxPairs
	}
	if config.Search.TurnPrice == 0 {
		config.Search.TurnPrice = 2
	}
	if config.Search.StraightPrice == 0 {
		config.Search.StraightPrice = 1
	}
	if config.Search.Budget == 0 && config.Puzzle.Width > 0 && config.Puzzle.Height > 0 {
		config.Search.Budget = mitm.DefaultConfigFor(config.Puzzle.Width, config.Puzzle.Height).Budget
	}
	if config.Limits.LoopTries == 0 {
		config.Limits.LoopTries = generator.DefaultLoopTries
	}
	if config.Limits.MaxAttempts == 0 {
		config.Limits.MaxAttempts = generator.DefaultMaxAttempts
	}
	if config.Limits.PathAttempts == 0 {
		config.Limits.PathAttempts = mitm.DefaultMaxAttempts
	}
	if config.Output.Format == "" {
		config.Output.Format = FormatText
	}
	if config.Output.Filler == "" {
		config.Output.Filler = string(label.DefaultFiller)
	}
	if config.Output.LabelOffset == nil {
		off := label.DefaultOffset
		config.Output.LabelOffset = &off
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Count == 0 {
		config.Count = 1
	}
	if config.Workers == 0 {
		config.Workers = 1
	}
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	p := config.Puzzle
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("puzzle size %dx%d must be positive", p.Width, p.Height)
	}
	if p.MinPairs < 0 || p.MaxPairs < p.MinPairs {
		return fmt.Errorf("pair range [%d, %d] is invalid", p.MinPairs, p.MaxPairs)
	}
	s := config.Search
	if s.TurnPrice <= 0 || s.StraightPrice <= 0 {
		return fmt.Errorf("search prices must be positive (turn %d, straight %d)", s.TurnPrice, s.StraightPrice)
	}
	if s.Budget < 0 {
		return fmt.Errorf("search budget %d is negative", s.Budget)
	}
	l := config.Limits
	if l.LoopTries < 0 || l.MaxAttempts <= 0 || l.PathAttempts <= 0 {
		return fmt.Errorf("limits must be positive (loop_tries %d, max_attempts %d, path_attempts %d)",
			l.LoopTries, l.MaxAttempts, l.PathAttempts)
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("invalid output format: %s (allowed: text, scheme, json, raw)", config.Output.Format)
	}
	for _, c := range config.Output.Palette {
		if !isHexColor(c) {
			return fmt.Errorf("invalid palette colour: %s (want #rrggbb)", c)
		}
	}
	if n := len([]rune(config.Output.Filler)); n != 1 {
		return fmt.Errorf("filler must be a single rune, got %q", config.Output.Filler)
	}
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}
	if config.Count < 0 {
		return fmt.Errorf("count %d is negative", config.Count)
	}
	if config.Workers <= 0 {
		return fmt.Errorf("workers %d must be positive", config.Workers)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// MitmConfig returns the index configuration.
func (c *Config) MitmConfig() mitm.Config {
	return mitm.Config{
		TurnPrice:     c.Search.TurnPrice,
		StraightPrice: c.Search.StraightPrice,
		Budget:        c.Search.Budget,
		MaxAttempts:   c.Limits.PathAttempts,
	}
}

// GeneratorOptions returns the generation options; extra are applied last.
func (c *Config) GeneratorOptions(extra ...generator.Option) []generator.Option {
	opts := []generator.Option{
		generator.WithMinPairs(c.Puzzle.MinPairs),
		generator.WithMaxPairs(c.Puzzle.MaxPairs),
		generator.WithLoopTries(c.Limits.LoopTries),
		generator.WithMaxAttempts(c.Limits.MaxAttempts),
		generator.WithWorkers(c.Workers),
		generator.WithSeed(c.Seed),
	}
	return append(opts, extra...)
}

// LabelOptions returns the labelling options for a palette of n colours.
func (c *Config) LabelOptions(palette int) []label.Option {
	filler := []rune(c.Output.Filler)[0]
	return []label.Option{
		label.WithFiller(filler),
		label.WithOffset(*c.Output.LabelOffset),
		label.WithPalette(palette),
	}
}
