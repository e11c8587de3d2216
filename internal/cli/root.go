// Package cli wires the per-day puzzle solvers into a single cobra
// command tree. Puzzle answers go to stdout; diagnostics go through zap.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

// New builds the root command with every day subcommand attached.
func New(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2019 puzzle solvers",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDay1Cmd(),
		newDay2Cmd(),
		newDay3Cmd(),
		newDay4Cmd(),
		newDay6Cmd(),
		newDay8Cmd(),
		newDay12Cmd(),
	)
	return root
}

// inputFlag registers the shared --input flag and returns its destination.
func inputFlag(cmd *cobra.Command) *string {
	var path string
	cmd.Flags().StringVarP(&path, "input", "i", "input.txt", "puzzle input file")
	return &path
}
