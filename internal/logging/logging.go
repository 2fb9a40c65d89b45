// Package logging sets up clikit's diagnostics on top of charmbracelet/log.
//
// Diagnostics always go to stderr so that stdout carries only rendered output
// (progress bars, prompts, captured arguments) that scripts may parse.
//
// Setup must run before New: charmbracelet/log copies the default logger's
// level and writer into a child when it is created.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger. quiet wins over verbose.
func Setup(verbose, quiet bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
}

// New returns a logger tagged with component.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
