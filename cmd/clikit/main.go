// Command clikit gives shell scripts colored output, same-line progress bars,
// countdowns, prompts and positional argument validation.
//
// Usage examples:
//
//	clikit info "Build finished"
//	clikit progress 3 10
//	clikit progress-complete
//	clikit countdown 5
//	name=$(clikit input "Project name" --block 20)
//	clikit confirm "Deploy now?" && ./deploy.sh
//	eval "$(clikit capture --rules rules.yaml -- "$@")"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/dmagro/clikit/internal/env"
)

// streams carries the process boundaries so tests can replace them.
type streams struct {
	in     io.Reader
	out    io.Writer
	err    io.Writer
	detect func() env.Environment
	sleep  func(time.Duration)
	exit   func(int)
}

// exitError ends the command with a status code and no message.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func execute(args []string, s streams) int {
	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = color.Output
	}
	if s.err == nil {
		s.err = color.Error
	}
	if s.detect == nil {
		s.detect = env.Detect
	}

	root := newRootCmd(s)
	root.SetArgs(guardNegatives(root, args))

	if err := root.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], streams{}))
}
