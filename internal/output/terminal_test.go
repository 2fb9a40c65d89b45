package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/logging"
)

type harness struct {
	out    bytes.Buffer
	err    bytes.Buffer
	sleeps []time.Duration
	exits  []int
	r      *Renderer
}

func newHarness(t *testing.T, sameLine, colors bool) *harness {
	t.Helper()
	h := &harness{}
	palette := format.DefaultPalette().WithEnabled(colors)
	h.r = New(Options{
		Out:      &h.out,
		Err:      &h.err,
		Palette:  &palette,
		SameLine: sameLine,
		Sleep:    func(d time.Duration) { h.sleeps = append(h.sleeps, d) },
		Exit:     func(code int) { h.exits = append(h.exits, code) },
		Logger:   logging.Discard(),
	})
	return h
}

func TestWriteLine(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.WriteLine("hello")
	h.r.WriteLine("")

	assert.Equal(t, "hello\n\n", h.out.String())
	assert.Equal(t, FreshLine, h.r.State())
}

func TestWriteSameLine(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.WriteSameLine("one")
	assert.Equal(t, MidLine, h.r.State())
	h.r.Spin("two")
	assert.Equal(t, MidLine, h.r.State())
	h.r.Newline(1)

	assert.Equal(t, "\r\x1b[Kone\r\x1b[Ktwo\n", h.out.String())
	assert.Equal(t, FreshLine, h.r.State())
}

func TestWriteSameLineWithoutCursorControl(t *testing.T) {
	h := newHarness(t, false, false)

	h.r.WriteSameLine("one")
	h.r.Spin("two")

	assert.Equal(t, "one\ntwo\n", h.out.String())
	assert.Equal(t, FreshLine, h.r.State())
}

func TestWriteLineAfterSameLineConcatenates(t *testing.T) {
	// the renderer documents the contract but does not enforce it
	h := newHarness(t, true, false)

	h.r.Spin("working")
	h.r.WriteLine("done")

	assert.Equal(t, "\r\x1b[Kworkingdone\n", h.out.String())
}

func TestNewline(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-2, ""},
		{1, "\n"},
		{3, "\n\n\n"},
	}

	for _, tt := range tests {
		h := newHarness(t, true, false)
		h.r.Newline(tt.n)
		assert.Equal(t, tt.want, h.out.String(), "Newline(%d)", tt.n)
	}
}

func TestInfoAndError(t *testing.T) {
	h := newHarness(t, true, true)

	h.r.Info("ok")
	h.r.Warn("careful")
	h.r.Error("broken")

	assert.Equal(t, "\x1b[0;32mok\x1b[0m\n\x1b[1;33mcareful\x1b[0m\n", h.out.String())
	assert.Equal(t, "\x1b[1;31mbroken\x1b[0m\n", h.err.String())
}

func TestInfoWithoutColor(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Info("ok")
	h.r.Error("broken")

	assert.Equal(t, "ok\n", h.out.String())
	assert.Equal(t, "broken\n", h.err.String())
}

func TestErrorEndsOpenSameLine(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Spin("working")
	h.r.Error("broken")

	assert.Equal(t, "\r\x1b[Kworking\n", h.out.String())
	assert.Equal(t, "broken\n", h.err.String())
	assert.Equal(t, FreshLine, h.r.State())

	h.r.Error("again")
	assert.Equal(t, "\r\x1b[Kworking\n", h.out.String(), "no extra newline once the line is closed")
}

func TestFatal(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Fatal("Script could not continue.")

	assert.Equal(t, "Script could not continue.\n", h.err.String())
	assert.Empty(t, h.out.String())
	assert.Equal(t, []int{1}, h.exits)
}

func TestZeroPaletteFallsBackToPlain(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Out: &out, Palette: &format.Palette{}, Logger: logging.Discard()})

	r.Info("plain")
	assert.Equal(t, "plain\n", out.String())
}

func TestColorize(t *testing.T) {
	h := newHarness(t, true, true)

	got, err := h.r.Colorize("x", format.Cyan)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0;36mx\x1b[0m", got)

	_, err = h.r.Colorize("x", format.Color("chartreuse"))
	assert.ErrorIs(t, err, format.ErrUnknownColor)
}

func TestBeep(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Beep(3)
	assert.Equal(t, "\x07\x07\x07", h.out.String())

	h.out.Reset()
	h.r.Beep(0)
	assert.Empty(t, h.out.String())
}

func TestTable(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Table([]string{"Name", "Rule"}, [][]string{
		{"count", "required|integer"},
		{"\x1b[0;32mmode\x1b[0m", "in:fast,slow"},
	})

	lines := strings.Split(strings.TrimRight(h.out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Name   Rule"))
	assert.True(t, strings.HasPrefix(lines[1], "count  required|integer"))
	// colored cell padded on visible width
	assert.True(t, strings.HasPrefix(format.Strip(lines[2]), "mode   in:fast,slow"))
}

func TestTableClosesOpenSameLine(t *testing.T) {
	h := newHarness(t, true, false)

	h.r.Spin("loading")
	h.r.Table([]string{"A"}, [][]string{{"1"}})

	assert.True(t, strings.HasPrefix(h.out.String(), "\r\x1b[Kloading\nA"))
}

func TestJSON(t *testing.T) {
	h := newHarness(t, true, false)
	h.r.Spin("working")

	require.NoError(t, h.r.JSON(map[string]any{"name": "x", "missing": nil}))

	out := strings.TrimPrefix(h.out.String(), "\r\x1b[Kworking")
	assert.JSONEq(t, `{"name": "x", "missing": null}`, out)
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, FreshLine, h.r.State())

	assert.Error(t, h.r.JSON(func() {}))
}
