package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/intcode"
)

// The 1202 program alarm state and the gravity assist target.
const (
	alarmNoun = 12
	alarmVerb = 2

	assistTarget = 19690720
)

func newDay2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day2",
		Short: "Restore the gravity assist program",
	}
	path := inputFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		memory, err := input.Ints(*path, ",")
		if err != nil {
			return err
		}
		logger.Debug("read intcode program", zap.String("path", *path), zap.Int("positions", len(memory)))

		program := intcode.New(memory)
		out := cmd.OutOrStdout()

		// Execution and search failures are puzzle results, not process
		// failures: print them and keep going.
		if result, err := program.Execute(alarmNoun, alarmVerb); err != nil {
			fmt.Fprintln(out, err)
		} else {
			fmt.Fprintln(out, result)
		}

		if i, j, err := program.Search(assistTarget); err != nil {
			fmt.Fprintln(out, err)
		} else {
			fmt.Fprintf(out, "(%d, %d)\n", i, j)
		}
		return nil
	}
	return cmd
}
