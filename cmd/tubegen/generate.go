package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubegen/config"
	"github.com/katalvlaran/tubegen/generator"
	"github.com/katalvlaran/tubegen/mitm"
)

// generateFlags mirror the config file; only flags set on the command line
// override it.
type generateFlags struct {
	configPath string
	width      int
	height     int
	pairs      int
	minPairs   int
	maxPairs   int
	budget     int
	seed       int64
	count      int
	workers    int
	format     string
	logLevel   string
	logFile    string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles",
		Example: `  tubegen generate --width 6 --height 6 --pairs 3
  tubegen generate --count 10 --workers 4 --format scheme --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.IntVar(&f.width, "width", 6, "puzzle width in cells")
	fl.IntVar(&f.height, "height", 6, "puzzle height in cells")
	fl.IntVar(&f.pairs, "pairs", 3, "exact number of tubes (sets --min-pairs and --max-pairs)")
	fl.IntVar(&f.minPairs, "min-pairs", 0, "minimum number of tubes")
	fl.IntVar(&f.maxPairs, "max-pairs", generator.DefaultMaxPairs, "maximum number of tubes")
	fl.IntVar(&f.budget, "budget", 0, "path index budget (0 derives it from the size)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 uses the fixed default)")
	fl.IntVar(&f.count, "count", 1, "number of puzzles")
	fl.IntVar(&f.workers, "workers", 1, "concurrent generators")
	fl.StringVar(&f.format, "format", config.FormatText, "output format: text, scheme, json, raw")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fl.StringVar(&f.logFile, "log-file", "", "log file (default stderr)")
	return cmd
}

// resolve loads the config file, if any, and applies the changed flags.
func (f *generateFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Puzzle.Width = f.width
	}
	if changed("height") {
		cfg.Puzzle.Height = f.height
	}
	if (changed("width") || changed("height")) && !changed("budget") {
		cfg.Search.Budget = 0
	}
	if changed("pairs") {
		cfg.Puzzle.MinPairs, cfg.Puzzle.MaxPairs = f.pairs, f.pairs
	}
	if changed("min-pairs") {
		cfg.Puzzle.MinPairs = f.minPairs
	}
	if changed("max-pairs") {
		cfg.Puzzle.MaxPairs = f.maxPairs
	}
	if changed("budget") {
		cfg.Search.Budget = f.budget
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("count") {
		cfg.Count = f.count
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-file") {
		cfg.Logging.Path = f.logFile
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	logger, closeLog, err := initLogger(cfg.Logging.Path, cfg.Logging.Level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	ctx := cmd.Context()
	start := time.Now()
	idx, err := mitm.Build(ctx, cfg.MitmConfig())
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	logger.Debug("index built", "entries", idx.Len(), "budget", cfg.Search.Budget, "took", time.Since(start))

	results, err := generator.GenerateBatch(ctx, idx, cfg.Puzzle.Width, cfg.Puzzle.Height, cfg.Count,
		cfg.GeneratorOptions(generator.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Info("generation finished", "puzzles", len(results), "took", time.Since(start))

	return newPrinter(cmd.OutOrStdout(), cfg).print(results)
}
