package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter shows a prompt and returns the next line of input.
// It returns io.EOF once input is exhausted.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// liner is a line reader over the console.
type liner struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads lines from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &liner{r: bufio.NewReader(in), out: out}
}

func (l *liner) Prompt(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	s, err := l.r.ReadString('\n')
	if err != nil {
		// a last line without newline still counts
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
