// Package output renders clikit's terminal output: plain and same-line writes,
// colored info and error lines, the progress bar, countdowns and tables.
//
// A Renderer is not safe for concurrent use. Every call writes synchronously
// to the configured streams; callers that share one across goroutines must
// serialize access themselves.
package output

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/logging"
)

const (
	carriageReturn = "\r"
	clearLine      = "\x1b[K"
	bell           = "\x07"
)

var defaultExit = os.Exit

// LineState tracks what the cursor is sitting on.
type LineState int

const (
	// FreshLine means the last write ended with a newline.
	FreshLine LineState = iota
	// MidLine means a same-line write is on screen and a newline is still owed.
	MidLine
)

func (s LineState) String() string {
	if s == MidLine {
		return "mid-line"
	}
	return "fresh-line"
}

// Options configures a Renderer. Zero values pick the process defaults.
type Options struct {
	Out      io.Writer // defaults to color.Output (colorable stdout)
	Err      io.Writer // defaults to color.Error (colorable stderr)
	Palette  *format.Palette
	SameLine bool // carriage-return redraws allowed; false degrades to plain lines
	Bar      BarStyle
	Sleep    func(time.Duration)
	Exit     func(int)
	Logger   *log.Logger
}

// Renderer writes styled text to stdout and stderr.
type Renderer struct {
	out      io.Writer
	err      io.Writer
	palette  format.Palette
	sameLine bool
	bar      BarStyle
	sleep    func(time.Duration)
	exit     func(int)
	logger   *log.Logger
	state    LineState
}

// New builds a Renderer from opts.
func New(opts Options) *Renderer {
	r := &Renderer{
		out:      opts.Out,
		err:      opts.Err,
		sameLine: opts.SameLine,
		bar:      opts.Bar.withDefaults(),
		sleep:    opts.Sleep,
		exit:     opts.Exit,
		logger:   opts.Logger,
	}
	if r.out == nil {
		r.out = color.Output
	}
	if r.err == nil {
		r.err = color.Error
	}
	if opts.Palette != nil {
		r.palette = *opts.Palette
	} else {
		r.palette = format.DefaultPalette()
	}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}
	if r.exit == nil {
		r.exit = defaultExit
	}
	if r.logger == nil {
		r.logger = logging.New("output")
	}
	return r
}

// Palette returns the palette used for colored output.
func (r *Renderer) Palette() format.Palette {
	return r.palette
}

// State reports whether a same-line render is still open.
func (r *Renderer) State() LineState {
	return r.state
}

// WriteLine prints s followed by a newline.
func (r *Renderer) WriteLine(s string) {
	if r.state == MidLine && s != "" {
		// Nothing stops this, but the text lands on the spinner's row.
		r.logger.Debug("line written over an open same-line render", "text", s)
	}
	_, _ = io.WriteString(r.out, s+"\n")
	r.state = FreshLine
}

// WriteSameLine returns to column zero, clears the row and prints s without a
// newline. The caller owes a final WriteLine (usually Newline) once the
// spinner or bar is done. Without cursor support it behaves like WriteLine.
func (r *Renderer) WriteSameLine(s string) {
	if !r.sameLine {
		r.WriteLine(s)
		return
	}
	_, _ = io.WriteString(r.out, carriageReturn+clearLine+s)
	r.state = MidLine
}

// Spin is WriteSameLine under its conventional name.
func (r *Renderer) Spin(s string) {
	r.WriteSameLine(s)
}

// Newline writes n empty lines.
func (r *Renderer) Newline(n int) {
	for i := 0; i < n; i++ {
		r.WriteLine("")
	}
}

// Colorize styles s with c from the renderer's palette.
func (r *Renderer) Colorize(s string, c format.Color) (string, error) {
	return r.palette.Colorize(s, c)
}

// Info prints s in green.
func (r *Renderer) Info(s string) {
	r.WriteLine(r.mustColorize(s, format.Green))
}

// Warn prints s in yellow.
func (r *Renderer) Warn(s string) {
	r.WriteLine(r.mustColorize(s, format.Yellow))
}

// Error prints s in bold red on stderr. An open same-line render on stdout is
// ended first so the message does not land on the spinner's row.
func (r *Renderer) Error(s string) {
	if r.state == MidLine {
		r.Newline(1)
	}
	_, _ = io.WriteString(r.err, r.mustColorize(s, format.LightRed)+"\n")
}

// Fatal prints s as an error and terminates the process with status 1.
func (r *Renderer) Fatal(s string) {
	r.Error(s)
	r.logger.Debug("fatal", "message", s)
	r.exit(1)
}

// Beep rings the terminal bell loops times.
func (r *Renderer) Beep(loops int) {
	if loops < 1 {
		return
	}
	_, _ = io.WriteString(r.out, strings.Repeat(bell, loops))
}

// mustColorize falls back to plain text when a custom palette dropped one of
// the semantic tokens.
func (r *Renderer) mustColorize(s string, c format.Color) string {
	styled, err := r.palette.Colorize(s, c)
	if err != nil {
		r.logger.Warn("palette has no semantic color, printing plain text", "color", string(c))
		return s
	}
	return styled
}
