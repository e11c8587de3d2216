package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/nbody"
)

func newDay12Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day12",
		Short: "Total energy of the moon system",
	}
	path := inputFlag(cmd)
	steps := cmd.Flags().Int("steps", 1000, "simulation steps to run")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lines, err := input.Lines(*path)
		if err != nil {
			return err
		}

		moons, err := nbody.ParseMoons(lines)
		if err != nil {
			return err
		}
		logger.Debug("parsed moons", zap.Int("count", len(moons)), zap.Int("steps", *steps))

		fmt.Fprintln(cmd.OutOrStdout(), nbody.TotalEnergy(moons, *steps))
		return nil
	}
	return cmd
}
