// aoc solves Advent of Code 2019 puzzles, one subcommand per day.
package main

import (
	"os"

	"aoc2019/internal/cli"
)

// Version information
var (
	Version   = "0.1.0"
	GitCommit = "dev"
)

func main() {
	if err := cli.New(Version + " (" + GitCommit + ")").Execute(); err != nil {
		os.Exit(1)
	}
}
