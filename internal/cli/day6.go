package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/orbits"
)

func newDay6Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day6",
		Short: "Orbit map checksum",
	}
	path := inputFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lines, err := input.Lines(*path)
		if err != nil {
			return err
		}

		m, err := orbits.Parse(lines)
		if err != nil {
			return err
		}
		logger.Debug("built orbit map", zap.Int("centers", len(m)))

		fmt.Fprintln(cmd.OutOrStdout(), m.Checksum())
		return nil
	}
	return cmd
}
