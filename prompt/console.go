package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/andareed/siftly-bikeshare/logging"
)

// ErrInputClosed is returned once the input has no more lines to give.
var ErrInputClosed = errors.New("input closed")

// Console asks questions on out and reads normalized answers from in,
// one line at a time.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out is where questions and messages are written.
func (c *Console) Out() io.Writer { return c.out }

// Say prints one line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Ask prints question and returns the normalized answer.
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprintln(c.out, question)
	// lines have no length limit; a last line without a newline still counts
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	answer := Normalize(line)
	logging.Debugf("asked %q, got %q", question, answer)
	return answer, nil
}

// Confirm asks a yes/no question. Anything but "yes" is a no.
func (c *Console) Confirm(question string) (bool, error) {
	answer, err := c.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
