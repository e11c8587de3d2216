package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/pkg/password"
)

func newDay4Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day4 <lower-bound> <upper-bound>",
		Short: "Count valid fuel depot passwords in a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse lower bound: %w", err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse upper bound: %w", err)
			}
			logger.Debug("scanning password range", zap.Int("lo", lo), zap.Int("hi", hi))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, password.CountInRange(lo, hi, password.ValidWeak))
			fmt.Fprintln(out, password.CountInRange(lo, hi, password.ValidStrict))
			return nil
		},
	}
}
