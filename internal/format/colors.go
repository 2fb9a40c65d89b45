// Package format holds the ANSI-aware text helpers: the color palette, visible
// width calculation and fixed-width cell padding.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// Color is a palette token such as "red" or "light_cyan".
type Color string

const (
	Black       Color = "black"
	DarkGray    Color = "dark_gray"
	Blue        Color = "blue"
	DarkBlue    Color = "dark_blue"
	LightBlue   Color = "light_blue"
	Green       Color = "green"
	LightGreen  Color = "light_green"
	Cyan        Color = "cyan"
	LightCyan   Color = "light_cyan"
	Red         Color = "red"
	LightRed    Color = "light_red"
	Purple      Color = "purple"
	LightPurple Color = "light_purple"
	LightYellow Color = "light_yellow"
	Yellow      Color = "yellow"
	LightGray   Color = "light_gray"
	White       Color = "white"
)

// ErrUnknownColor is returned when a token is not in the palette.
var ErrUnknownColor = errors.New("unknown color")

const (
	escape = "\x1b"
	reset  = escape + "[0m"
)

var sgrParams = regexp.MustCompile(`^\d+(;\d+)*$`)

var defaultSGR = map[Color]string{
	Black:       "0;30",
	DarkGray:    "1;30",
	Blue:        "0;34",
	DarkBlue:    "1;34",
	LightBlue:   "1;34",
	Green:       "0;32",
	LightGreen:  "1;32",
	Cyan:        "0;36",
	LightCyan:   "1;36",
	Red:         "0;31",
	LightRed:    "1;31",
	Purple:      "0;35",
	LightPurple: "1;35",
	LightYellow: "0;33",
	Yellow:      "1;33",
	LightGray:   "0;37",
	White:       "1;37",
}

// Palette maps color tokens to SGR parameter strings. A Palette is built once
// and never modified; use NewPalette to derive one with overrides.
type Palette struct {
	sgr     map[Color]string
	enabled bool
}

// DefaultPalette returns the built-in palette with colors enabled.
func DefaultPalette() Palette {
	p, _ := NewPalette(nil, true)
	return p
}

// NewPalette copies the built-in table, merges overrides on top and returns the
// result. Override values must be SGR parameters like "1;31".
func NewPalette(overrides map[string]string, enabled bool) (Palette, error) {
	sgr := make(map[Color]string, len(defaultSGR)+len(overrides))
	for c, s := range defaultSGR {
		sgr[c] = s
	}
	for name, s := range overrides {
		if name == "" {
			return Palette{}, fmt.Errorf("palette override with empty name")
		}
		if !sgrParams.MatchString(s) {
			return Palette{}, fmt.Errorf("palette override %s: invalid SGR parameters %q", name, s)
		}
		sgr[Color(name)] = s
	}
	return Palette{sgr: sgr, enabled: enabled}, nil
}

// Enabled reports whether Colorize emits escape sequences.
func (p Palette) Enabled() bool {
	return p.enabled
}

// WithEnabled returns a copy of p with color emission switched on or off.
func (p Palette) WithEnabled(enabled bool) Palette {
	return Palette{sgr: p.sgr, enabled: enabled}
}

// SGR returns the parameter string for c.
func (p Palette) SGR(c Color) (string, error) {
	s, ok := p.sgr[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, string(c))
	}
	return s, nil
}

// Colorize wraps s in the SGR sequence for c followed by a reset. The token is
// validated even when colors are disabled, in which case s comes back as is.
func (p Palette) Colorize(s string, c Color) (string, error) {
	sgr, err := p.SGR(c)
	if err != nil {
		return "", err
	}
	if !p.enabled {
		return s, nil
	}
	return escape + "[" + sgr + "m" + s + reset, nil
}

// Colors lists every token in the palette, sorted.
func (p Palette) Colors() []Color {
	out := make([]Color, 0, len(p.sgr))
	for c := range p.sgr {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
