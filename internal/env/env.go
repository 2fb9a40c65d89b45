// Package env resolves the terminal capabilities clikit cares about: whether
// stdout is an interactive terminal, whether the host is Windows, and whether
// the user asked for no color. Detection runs once at startup; the result is
// passed explicitly to the renderer instead of being re-checked per call.
package env

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode is the user's color preference.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never (case-insensitive). Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto, always or never)", s)
	}
}

// Environment is the detected host state.
type Environment struct {
	Interactive bool // stdout is a terminal
	Windows     bool
	NoColorEnv  bool // NO_COLOR set, TERM=dumb, or fatih/color already disabled output
}

// Detect inspects the current process once.
func Detect() Environment {
	fd := os.Stdout.Fd()
	return Environment{
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Windows:     runtime.GOOS == "windows",
		NoColorEnv:  os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || color.NoColor,
	}
}

// SameLine reports whether carriage-return redraws are safe. Piped output and
// Windows consoles get plain newline-terminated lines instead.
func (e Environment) SameLine() bool {
	return e.Interactive && !e.Windows
}

// Color resolves whether SGR sequences should be emitted under mode.
func (e Environment) Color(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return e.Interactive && !e.Windows && !e.NoColorEnv
	}
}
