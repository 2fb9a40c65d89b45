package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/clikit/internal/capture"
)

func captureCmd(a *app) *cobra.Command {
	var (
		rulesPath string
		inline    []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "capture [--rules file.yaml] [--rule name=rule]... -- [args...]",
		Short: "Validate positional arguments and print them as shell assignments",
		Long: `Map positional arguments onto named rules, validate them, and print one
name='value' line per rule for eval. Missing arguments and the literal null
print as name=''. With --json a single object is printed instead, with null
for missing values.

Rules are pipe-separated: required, numeric, integer, alpha, alpha_num,
min:N, max:N, in:a,b,c. A rule may be empty to capture without checks.
Passing "help" as the first argument prints the rules.

Rules file:
  - name: count
    rule: required|integer|min:1
  - name: mode
    rule: in:fast,slow

Example:
  eval "$(clikit capture --rules rules.yaml -- "$@")" || exit 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rules capture.Rules
			if rulesPath != "" {
				loaded, err := capture.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				rules = loaded
			}
			if len(inline) > 0 {
				parsed, err := capture.ParseRules(inline)
				if err != nil {
					return err
				}
				rules = append(rules, parsed...)
			}
			if len(rules) == 0 {
				return fmt.Errorf("no rules given (use --rules or --rule)")
			}
			if err := rules.Validate(); err != nil {
				return err
			}

			// stdout is reserved for the assignments
			captured, err := capture.Capture(a.stderrRenderer("capture"), args, rules, capture.DefaultValidator{})
			if errors.Is(err, capture.ErrHelp) {
				return nil
			}
			if err != nil {
				return exitError{code: 1}
			}

			if asJSON {
				return a.r.JSON(map[string]*string(captured))
			}
			for _, name := range rules.Names() {
				v, _ := captured.Value(name)
				fmt.Fprintf(a.s.out, "%s=%s\n", name, shellQuote(v))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file listing {name, rule} entries in argument order")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the captured values as a JSON object")
	cmd.Flags().StringArrayVar(&inline, "rule", nil, "Inline rule as name=rule (repeatable, appended after --rules)")
	return cmd
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
