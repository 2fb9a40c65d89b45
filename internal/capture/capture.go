// Package capture maps a script's positional arguments onto named rules,
// validates them and stops the script with a readable report when they are
// wrong.
package capture

import (
	"errors"

	"github.com/dmagro/clikit/internal/output"
)

// Null is the argument spelling that captures as a nil value.
const Null = "null"

var (
	// ErrHelp is returned after the rule table was printed for "help".
	ErrHelp = errors.New("help requested")
	// ErrInvalid is returned when validation failed. The renderer's Fatal has
	// already run by then, so it is only seen when Exit was replaced.
	ErrInvalid = errors.New("arguments failed validation")
)

// Args holds captured values by name; nil means missing or "null".
type Args map[string]*string

// Value returns the argument and whether it is set.
func (a Args) Value(name string) (string, bool) {
	v := a[name]
	if v == nil {
		return "", false
	}
	return *v, true
}

// Capture assigns args[i] to rules[i].Name, validates with v and returns the
// captured values. Arguments beyond the last rule are ignored.
//
// A first argument of "help" prints the rules and returns ErrHelp. On
// validation failure the rules and messages are printed and the renderer's
// Fatal ends the process.
func Capture(r *output.Renderer, args []string, rules Rules, v Validator) (Args, error) {
	if len(args) > 0 && args[0] == "help" {
		r.Error("Rules:")
		printRules(r, rules)
		return nil, ErrHelp
	}

	if v == nil {
		v = DefaultValidator{}
	}

	clean := make(Args, len(rules))
	for i, rule := range rules {
		if i < len(args) {
			val := args[i]
			clean[rule.Name] = &val
		} else {
			clean[rule.Name] = nil
		}
	}

	checked := make(Rules, 0, len(rules))
	for _, rule := range rules {
		if rule.Rule != "" {
			checked = append(checked, rule)
		}
	}

	if failures := v.Validate(clean, checked); len(failures) > 0 {
		r.Error("Rules:")
		printRules(r, rules)
		r.Error("Errors:")
		printFailures(r, failures)
		r.Fatal("Script could not continue.")
		return nil, ErrInvalid
	}

	for name, val := range clean {
		if val != nil && *val == Null {
			clean[name] = nil
		}
	}
	return clean, nil
}

func printRules(r *output.Renderer, rules Rules) {
	rows := make([][]string, len(rules))
	for i, rule := range rules {
		rows[i] = []string{rule.Name, rule.Rule}
	}
	r.Table([]string{"Argument", "Rule"}, rows)
}

func printFailures(r *output.Renderer, failures []Failure) {
	rows := make([][]string, len(failures))
	for i, f := range failures {
		rows[i] = []string{f.Name, f.Message}
	}
	r.Table([]string{"Argument", "Error"}, rows)
}
