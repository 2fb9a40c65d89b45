package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// Align selects which side of a cell the content sits on.
type Align int

const (
	AlignRight Align = iota
	AlignLeft
)

// Fill selects the padding character.
type Fill int

const (
	FillSpace Fill = iota
	FillDot
)

var sgrRegex = regexp.MustCompile(`\x1b\[\d+(?:;\d+)*m`)

// Strip removes SGR color sequences, including resets, from s.
func Strip(s string) string {
	return sgrRegex.ReplaceAllString(s, "")
}

// VisibleLength counts the user-perceived characters in s, ignoring color
// sequences. Multi-byte symbols such as "✓" count once.
func VisibleLength(s string) int {
	return uniseg.GraphemeClusterCount(Strip(s))
}

// Pad returns s as a cell exactly width characters wide.
//
// Strings longer than width are cut to their first width visible characters;
// the cut copy is taken from the stripped text, so any color is lost.
// Dot fill renders as "<dots>. <s>" when right aligned and "<s> .<dots>" when
// left aligned.
func Pad(s string, width int, align Align, fill Fill) string {
	if width < 0 {
		width = 0
	}

	size := VisibleLength(s)
	if size > width {
		return truncate(Strip(s), width)
	}
	if size == width {
		return s
	}

	ch := " "
	if fill == FillDot {
		ch = "."
	}
	run := strings.Repeat(ch, width-size)

	if align == AlignLeft {
		if fill == FillDot {
			return s + " ." + run
		}
		return s + run
	}

	if fill == FillDot {
		return run + ". " + s
	}
	return run + s
}

func truncate(s string, n int) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// ParseAlign accepts "left" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "right", "":
		return AlignRight, nil
	case "left":
		return AlignLeft, nil
	default:
		return AlignRight, fmt.Errorf("invalid align %q (expected left or right)", s)
	}
}
