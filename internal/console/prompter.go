package console

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter supplies operator input one line at a time.  The console loop
// depends only on this interface, so tests can script a whole till
// session and the priced core never touches an input stream.
type Prompter interface {
	// ReadLine prints the prompt and returns the next input line with
	// the trailing newline stripped.  ok is false once input is
	// exhausted, which the loop treats as a quit request.
	ReadLine(prompt string) (line string, ok bool)
}

// LinePrompter reads lines from an io.Reader, echoing prompts to an
// io.Writer.  This is the production Prompter backed by stdin/stdout.
type LinePrompter struct {
	out io.Writer
	sc  *bufio.Scanner
}

// NewLinePrompter returns a Prompter reading from in and prompting on out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{out: out, sc: bufio.NewScanner(in)}
}

// ReadLine implements Prompter.
func (p *LinePrompter) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		return "", false
	}
	return p.sc.Text(), true
}
