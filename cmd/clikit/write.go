package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/clikit/internal/format"
)

func writeCmd(a *app) *cobra.Command {
	var sameLine bool

	cmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Print text, optionally rewriting the current line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if sameLine {
				a.r.WriteSameLine(text)
				return nil
			}
			a.r.WriteLine(text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sameLine, "same-line", false, "Overwrite the current line instead of ending it")
	return cmd
}

func spinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spin [text...]",
		Short: "Rewrite the current line with text (no newline)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.Spin(strings.Join(args, " "))
			return nil
		},
	}
}

func newlineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "newline [count]",
		Annotations: map[string]string{numericArgs: "true"},
		Short:       "Print empty lines (closes a spin or progress sequence)",
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := optionalInt(args, 1)
			if err != nil {
				return err
			}
			a.r.Newline(n)
			return nil
		},
	}
}

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [text...]",
		Short: "Print text in green",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.Info(strings.Join(args, " "))
			return nil
		},
	}
}

func warnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "warn [text...]",
		Short: "Print text in yellow",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.Warn(strings.Join(args, " "))
			return nil
		},
	}
}

func errorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "error [text...]",
		Short: "Print text in red on stderr",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.Error(strings.Join(args, " "))
			return nil
		},
	}
}

func fatalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fatal [text...]",
		Short: "Print text in red on stderr and exit with status 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.Fatal(strings.Join(args, " "))
			return exitError{code: 1}
		},
	}
}

func beepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "beep [loops]",
		Annotations: map[string]string{numericArgs: "true"},
		Short:       "Ring the terminal bell",
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := optionalInt(args, 1)
			if err != nil {
				return err
			}
			a.r.Beep(n)
			return nil
		},
	}
}

func colorCmd(a *app) *cobra.Command {
	var sameLine bool

	cmd := &cobra.Command{
		Use:   "color <color> [text...]",
		Short: "Print text in a palette color",
		Long: `Print text in a palette color. Run "clikit colors" for the list of tokens;
palette entries from the config file are included.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styled, err := a.r.Colorize(strings.Join(args[1:], " "), format.Color(args[0]))
			if err != nil {
				return err
			}
			if sameLine {
				a.r.WriteSameLine(styled)
				return nil
			}
			a.r.WriteLine(styled)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sameLine, "same-line", false, "Overwrite the current line instead of ending it")
	return cmd
}

func colorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List palette colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := a.r.Palette()
			rows := make([][]string, 0)
			for _, c := range palette.Colors() {
				sgr, _ := palette.SGR(c)
				sample, _ := palette.Colorize(string(c), c)
				rows = append(rows, []string{sample, sgr})
			}
			a.r.Table([]string{"Color", "SGR"}, rows)
			return nil
		},
	}
}

func optionalInt(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[0], err)
	}
	return n, nil
}
