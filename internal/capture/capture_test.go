package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/logging"
	"github.com/dmagro/clikit/internal/output"
)

type harness struct {
	out   bytes.Buffer
	err   bytes.Buffer
	exits []int
	r     *output.Renderer
}

func newHarness() *harness {
	h := &harness{}
	palette := format.DefaultPalette().WithEnabled(false)
	h.r = output.New(output.Options{
		Out:     &h.out,
		Err:     &h.err,
		Palette: &palette,
		Exit:    func(code int) { h.exits = append(h.exits, code) },
		Logger:  logging.Discard(),
	})
	return h
}

var scriptRules = Rules{
	{Name: "count", Rule: "required|integer|min:1"},
	{Name: "mode", Rule: "in:fast,slow"},
	{Name: "note", Rule: ""},
}

func TestCapture(t *testing.T) {
	h := newHarness()

	args, err := Capture(h.r, []string{"3", "fast", "hello", "extra"}, scriptRules, nil)
	require.NoError(t, err)

	v, ok := args.Value("count")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	v, _ = args.Value("mode")
	assert.Equal(t, "fast", v)
	v, _ = args.Value("note")
	assert.Equal(t, "hello", v)
	assert.Len(t, args, 3)
	assert.Empty(t, h.exits)
	assert.Empty(t, h.err.String())
}

func TestCaptureMissingAndNull(t *testing.T) {
	h := newHarness()

	args, err := Capture(h.r, []string{"2", "null"}, scriptRules, nil)
	require.NoError(t, err)

	_, ok := args.Value("mode")
	assert.False(t, ok, "null becomes nil")
	_, ok = args.Value("note")
	assert.False(t, ok, "missing becomes nil")
	assert.Contains(t, args, "note")
}

func TestCaptureHelp(t *testing.T) {
	h := newHarness()

	args, err := Capture(h.r, []string{"help"}, scriptRules, nil)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Nil(t, args)
	assert.Contains(t, h.err.String(), "Rules:")
	assert.Contains(t, h.out.String(), "count     required|integer|min:1")
	assert.Empty(t, h.exits)
}

func TestCaptureFailure(t *testing.T) {
	h := newHarness()

	args, err := Capture(h.r, []string{"zero", "medium"}, scriptRules, nil)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Nil(t, args)
	assert.Equal(t, []int{1}, h.exits)

	assert.Equal(t, "Rules:\nErrors:\nScript could not continue.\n", h.err.String())
	assert.Contains(t, h.out.String(), "The count must be an integer.")
	assert.Contains(t, h.out.String(), "The selected mode is invalid")
}

func TestCaptureMissingRequired(t *testing.T) {
	h := newHarness()

	_, err := Capture(h.r, nil, scriptRules, nil)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, h.out.String(), "The count field is required.")
}

type recordingValidator struct {
	seen Rules
}

func (rv *recordingValidator) Validate(_ map[string]*string, rules Rules) []Failure {
	rv.seen = rules
	return nil
}

func TestCaptureSkipsBlankRules(t *testing.T) {
	h := newHarness()
	rv := &recordingValidator{}

	_, err := Capture(h.r, []string{"1"}, scriptRules, rv)
	require.NoError(t, err)
	assert.Equal(t, []string{"count", "mode"}, rv.seen.Names())
}

func TestParseRules(t *testing.T) {
	rs, err := ParseRules([]string{"count=required|integer", " note "})
	require.NoError(t, err)
	assert.Equal(t, Rules{{Name: "count", Rule: "required|integer"}, {Name: "note"}}, rs)

	_, err = ParseRules([]string{"a=required", "a=integer"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseRules([]string{"=required"})
	assert.ErrorContains(t, err, "name is required")
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: count
  rule: required|integer
- name: note
`), 0o644))

	rs, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, Rules{{Name: "count", Rule: "required|integer"}, {Name: "note"}}, rs)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read rules")
}
