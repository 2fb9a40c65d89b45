package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func progressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "progress <current> <total>",
		Annotations: map[string]string{numericArgs: "true"},
		Short:       "Draw a progress bar on the current line",
		Long: `Draw a 50-cell progress bar for current/total on the current line.

Call it repeatedly with growing values, then finish with "clikit
progress-complete" (or "clikit newline").

Example:
  for i in $(seq 1 10); do clikit progress "$i" 10; sleep 1; done
  clikit newline`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid current %q: %w", args[0], err)
			}
			total, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid total %q: %w", args[1], err)
			}
			return a.r.Progress(current, total)
		},
	}
}

func progressCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress-complete",
		Short: "Draw a full progress bar and end the line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.r.ProgressComplete()
		},
	}
}

func countdownCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "countdown <seconds>",
		Annotations: map[string]string{numericArgs: "true"},
		Short:       "Count down on the current line, one second per step",
		Long: `Show "Waiting N seconds..." on the current line once per second, then end
the line. The command blocks for that many seconds. Zero, negative or
non-integer input prints nothing and exits successfully.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.CountdownArg(args[0])
			return nil
		},
	}
}
