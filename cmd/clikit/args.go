package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// numericArgs marks commands whose positionals may be negative numbers.
// pflag reads "-5" as a shorthand flag, so those arguments are moved behind
// a "--" before cobra parses them.
const numericArgs = "clikit.numeric-args"

var negativeNumber = regexp.MustCompile(`^-(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// guardNegatives inserts "--" in front of the first negative number that
// follows the subcommand name. Flags before it are parsed as usual; flags
// after it become positionals.
func guardNegatives(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root || cmd.Annotations[numericArgs] == "" {
		return args
	}

	seenCmd := false
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !seenCmd {
			seenCmd = a == cmd.Name() && (i == 0 || !takesValue(cmd, args[i-1]))
			continue
		}
		if negativeNumber.MatchString(a) && !takesValue(cmd, args[i-1]) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// takesValue reports whether tok is a flag that consumes the next argument.
func takesValue(cmd *cobra.Command, tok string) bool {
	if !strings.HasPrefix(tok, "-") || strings.Contains(tok, "=") || tok == "-" {
		return false
	}

	name := strings.TrimLeft(tok, "-")
	if strings.HasPrefix(tok, "--") {
		f := cmd.LocalFlags().Lookup(name)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
		return f != nil && f.Value.Type() != "bool"
	}

	// grouped shorthands such as -vq are all booleans here
	if len(name) != 1 {
		return false
	}
	f := cmd.LocalFlags().ShorthandLookup(name)
	if f == nil {
		f = cmd.InheritedFlags().ShorthandLookup(name)
	}
	return f != nil && f.Value.Type() != "bool"
}
