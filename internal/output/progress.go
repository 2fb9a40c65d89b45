package output

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrDivisionByZero is returned for a progress total of zero.
	ErrDivisionByZero = errors.New("division by zero: progress total is 0")
	// ErrNotFinite is returned when current, total or their ratio is NaN or
	// infinite.
	ErrNotFinite = errors.New("progress values must be finite")
)

// barTicks is the number of cells between the delimiters, minus the leading
// tick that is always drawn.
const barTicks = 49

// BarStyle sets the progress bar glyphs.
type BarStyle struct {
	Open  string
	Close string
	Fill  string
}

func (b BarStyle) withDefaults() BarStyle {
	if b.Open == "" {
		b.Open = "["
	}
	if b.Close == "" {
		b.Close = "]"
	}
	if b.Fill == "" {
		b.Fill = "="
	}
	return b
}

// Percent returns 100*current/total rounded to two decimals.
func Percent(current, total float64) (float64, error) {
	if !finite(current) || !finite(total) {
		return 0, fmt.Errorf("%w: current=%v total=%v", ErrNotFinite, current, total)
	}
	if total == 0 {
		return 0, ErrDivisionByZero
	}
	pct := math.Round(100*current/total*100) / 100
	if !finite(pct) {
		return 0, fmt.Errorf("%w: %v/%v overflows", ErrNotFinite, current, total)
	}
	if pct == 0 {
		pct = 0 // drop negative zero
	}
	return pct, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ProgressBar renders the bar for current out of total, e.g.
//
//	[=========                                         ] 16.00%
//
// The fill is clamped to the bar's width; the printed percentage is not.
func (r *Renderer) ProgressBar(current, total float64) (string, error) {
	pct, err := Percent(current, total)
	if err != nil {
		return "", err
	}

	filled := int(math.Round(barTicks * pct / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > barTicks {
		filled = barTicks
	}

	var b strings.Builder
	b.WriteString(r.bar.Open)
	b.WriteString(strings.Repeat(r.bar.Fill, filled+1))
	b.WriteString(strings.Repeat(" ", barTicks-filled))
	b.WriteString(r.bar.Close)
	b.WriteString(" ")
	b.WriteString(strconv.FormatFloat(pct, 'f', 2, 64))
	b.WriteString("%")
	return b.String(), nil
}

// Progress draws the bar in place.
func (r *Renderer) Progress(current, total float64) error {
	bar, err := r.ProgressBar(current, total)
	if err != nil {
		return err
	}
	r.WriteSameLine(bar)
	return nil
}

// ProgressComplete draws a full bar and moves to a fresh line.
func (r *Renderer) ProgressComplete() error {
	if err := r.Progress(1, 1); err != nil {
		return err
	}
	r.Newline(1)
	return nil
}

// Countdown shows "Waiting N seconds..." in place once per second, from
// seconds down to 1, then ends the line. It blocks the caller for roughly
// that many seconds. Zero or negative values do nothing.
func (r *Renderer) Countdown(seconds int) {
	if seconds <= 0 {
		return
	}
	for i := seconds; i > 0; i-- {
		r.Spin(fmt.Sprintf("Waiting %d seconds...", i))
		r.sleep(time.Second)
	}
	r.Newline(1)
}

// CountdownArg runs Countdown for a decimal argument. Input that is not an
// integer is ignored rather than reported.
func (r *Renderer) CountdownArg(arg string) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		r.logger.Debug("countdown argument is not an integer, skipping", "arg", arg)
		return
	}
	r.Countdown(n)
}
