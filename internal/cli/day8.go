package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2019/internal/input"
	"aoc2019/pkg/spaceimage"
)

func newDay8Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day8",
		Short: "Space image transmission checksum",
	}
	path := inputFlag(cmd)
	width := cmd.Flags().Int("width", 25, "image width in pixels")
	height := cmd.Flags().Int("height", 6, "image height in pixels")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		digits, err := input.Digits(*path)
		if err != nil {
			return err
		}

		layers, err := spaceimage.Layers(digits, *width, *height)
		if err != nil {
			return err
		}
		logger.Debug("split transmission", zap.Int("layers", len(layers)))

		fmt.Fprintln(cmd.OutOrStdout(), spaceimage.Checksum(layers))
		return nil
	}
	return cmd
}
