package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/fuel"
)

func newDay1Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day1",
		Short: "Fuel requirements for module masses",
	}
	path := inputFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		masses, err := input.Ints(*path, "\n")
		if err != nil {
			return err
		}
		logger.Debug("read module masses", zap.String("path", *path), zap.Int("count", len(masses)))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Part 1: %d\n", fuel.Total(masses))
		fmt.Fprintf(out, "Part 2: %d\n", fuel.TotalCompounded(masses))
		return nil
	}
	return cmd
}
