package tools

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"sync"
)

const maxLineSize = 1 << 20

// LineStream yields the lines of a reader once, without terminators.
type LineStream struct {
	r    io.Reader
	err  error
	used bool
}

// Lines wraps r in a single-use line sequence.
func Lines(r io.Reader) *LineStream { return &LineStream{r: r} }

// All returns the line sequence. Iterating a second time yields nothing.
func (s *LineStream) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.used {
			return
		}
		s.used = true
		sc := bufio.NewScanner(s.r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			if !yield(strings.TrimSuffix(sc.Text(), "\r")) {
				return
			}
		}
		s.err = sc.Err()
	}
}

// Err reports the read error that ended iteration, if any.
func (s *LineStream) Err() error { return s.err }

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// Sink receives streamed output lines. Stdout and Stderr may be called
// concurrently with each other.
type Sink interface {
	Stdout(line string)
	Stderr(line string)
}

// ConsoleSink writes stdout lines to Out and stderr lines to Err.
type ConsoleSink struct {
	Out io.Writer
	Err io.Writer
}

func (s ConsoleSink) Stdout(line string) { _, _ = io.WriteString(s.Out, line+"\n") }
func (s ConsoleSink) Stderr(line string) { _, _ = io.WriteString(s.Err, line+"\n") }

// Transcript is an in-memory Sink for tests; safe for concurrent use.
type Transcript struct {
	mu  sync.Mutex
	out []string
	err []string
}

func (t *Transcript) Stdout(line string) {
	t.mu.Lock()
	t.out = append(t.out, line)
	t.mu.Unlock()
}

func (t *Transcript) Stderr(line string) {
	t.mu.Lock()
	t.err = append(t.err, line)
	t.mu.Unlock()
}

// StdoutLines returns a copy of the collected stdout lines.
func (t *Transcript) StdoutLines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.out...)
}

// StderrLines returns a copy of the collected stderr lines.
func (t *Transcript) StderrLines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.err...)
}
