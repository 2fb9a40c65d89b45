package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/clikit/internal/format"
)

func blockCmd(a *app) *cobra.Command {
	var (
		align string
		dots  bool
	)

	cmd := &cobra.Command{
		Use:         "block <text> <width>",
		Annotations: map[string]string{numericArgs: "true"},
		Short:       "Pad or cut text into a fixed-width cell",
		Long: `Pad text to width visible characters, ignoring color codes. Text longer
than width is cut and loses its color.

Examples:
  clikit block "Name" 12 --align left --dots   # Name .........
  clikit block "42" 6                          #     42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[1], err)
			}
			al, err := format.ParseAlign(align)
			if err != nil {
				return err
			}
			fill := format.FillSpace
			if dots {
				fill = format.FillDot
			}
			a.r.WriteLine(format.Pad(args[0], width, al, fill))
			return nil
		},
	}

	cmd.Flags().StringVar(&align, "align", "right", "Alignment: left|right")
	cmd.Flags().BoolVar(&dots, "dots", false, "Fill with dots instead of spaces")
	return cmd
}

func lengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "length <text>",
		Short: "Print the visible length of text, ignoring color codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.r.WriteLine(strconv.Itoa(format.VisibleLength(args[0])))
			return nil
		},
	}
}
