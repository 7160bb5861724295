package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tubegen/mitm"
)

func newIndexCmd() *cobra.Command {
	var width, height int
	cfg := mitm.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the path index and print its statistics as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("budget") {
				cfg.Budget = mitm.DefaultConfigFor(width, height).Budget
			}
			idx, err := mitm.Build(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("build index: %w", err)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(idx.Stats())
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&width, "width", 6, "puzzle width the budget is sized for")
	fl.IntVar(&height, "height", 6, "puzzle height the budget is sized for")
	fl.IntVar(&cfg.Budget, "budget", cfg.Budget, "explicit budget (overrides the size)")
	fl.IntVar(&cfg.TurnPrice, "turn-price", cfg.TurnPrice, "cost of a turning step")
	fl.IntVar(&cfg.StraightPrice, "straight-price", cfg.StraightPrice, "cost of a straight step")
	return cmd
}
