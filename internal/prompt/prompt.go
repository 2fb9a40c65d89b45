// Package prompt asks the user questions on the terminal and reads one line
// of input per question.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/output"
)

// DefaultAccept lists the answers Confirm treats as yes.
var DefaultAccept = []string{"Y", "Yes", "y", "yes", "1"}

// Prompter pairs a renderer with an input stream.
type Prompter struct {
	r      *output.Renderer
	in     *bufio.Reader
	accept []string
}

// New returns a Prompter reading from in (stdin when nil). accept overrides
// DefaultAccept when non-empty.
func New(r *output.Renderer, in io.Reader, accept []string) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if len(accept) == 0 {
		accept = DefaultAccept
	}
	return &Prompter{r: r, in: bufio.NewReader(in), accept: accept}
}

// Input shows question followed by ": " on the current line and blocks until
// a line is read. A positive block pads the question into a dotted cell of
// that width so a series of prompts line up. The answer is trimmed.
func (p *Prompter) Input(question string, block int) (string, error) {
	if block > 0 {
		question = format.Pad(question, block, format.AlignLeft, format.FillDot)
	}
	p.r.Spin(question + ": ")

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a [Y/N] question and reports whether the answer is one of the
// accepted tokens. Anything else, including an empty answer, is a no.
func (p *Prompter) Confirm(question string, block int) (bool, error) {
	answer, err := p.Input(question+" [Y/N]", block)
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer, p.accept), nil
}

// IsAffirmative reports whether answer exactly matches one of tokens.
func IsAffirmative(answer string, tokens []string) bool {
	for _, tok := range tokens {
		if answer == tok {
			return true
		}
	}
	return false
}
