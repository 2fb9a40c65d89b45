package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inputCmd(a *app) *cobra.Command {
	var block int

	cmd := &cobra.Command{
		Use:   "input <question>",
		Short: "Ask a question and print the answer",
		Long: `Ask a question on stderr, read one line from stdin and print the trimmed
answer on stdout.

Example:
  name=$(clikit input "Project name" --block 20)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := a.prompter().Input(args[0], block)
			if err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(a.s.out, answer)
			return nil
		},
	}

	cmd.Flags().IntVar(&block, "block", 0, "Pad the question with dots to this width")
	return cmd
}

func confirmCmd(a *app) *cobra.Command {
	var block int

	cmd := &cobra.Command{
		Use:   "confirm <question>",
		Short: "Ask a yes/no question; exit status 0 means yes",
		Long: `Ask a [Y/N] question. The answers Y, Yes, y, yes and 1 (or the config's
confirm.accept list) exit with status 0; anything else exits with status 1.

Example:
  clikit confirm "Deploy now?" && ./deploy.sh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.prompter().Confirm(args[0], block)
			if err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			if !ok {
				return exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&block, "block", 0, "Pad the question with dots to this width")
	return cmd
}
