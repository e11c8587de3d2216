package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/wires"
)

func newDay3Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day3",
		Short: "Closest and shortest wire crossings",
	}
	path := inputFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lines, err := input.Lines(*path)
		if err != nil {
			return err
		}

		paths := make([]wires.Path, len(lines))
		for i, line := range lines {
			if paths[i], err = wires.ParsePath(line); err != nil {
				return err
			}
		}
		logger.Debug("traced wire paths", zap.Int("wires", len(paths)))

		closest, err := wires.ClosestCrossing(paths)
		if err != nil {
			return err
		}
		shortest, err := wires.ShortestCrossing(paths)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, closest)
		fmt.Fprintln(out, shortest)
		return nil
	}
	return cmd
}
