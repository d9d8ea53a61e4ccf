package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a captured run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner spawns external programs. The zero value is ready to use.
type Runner struct {
	// Env, when set, is appended to the parent environment.
	Env []string
}

// RunCaptured runs exe without a visible window and returns its exit code
// and fully buffered output. A non-zero exit is reported in Result, not as
// an error; only a failure to start yields a *SpawnError.
func (r Runner) RunCaptured(ctx context.Context, exe string, args ...string) (Result, error) {
	cmd := r.command(ctx, exe, args)
	hideWindow(cmd)

	// os/exec drains both pipes concurrently with Wait when the targets are
	// plain writers, so a chatty child never blocks on a full pipe.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, &SpawnError{Exe: exe, Err: err}
	}
	code, err := exitCode(cmd.Wait())
	return Result{ExitCode: code, Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// RunStreaming runs exe and forwards every non-blank output line to sink as
// it arrives. It returns once the process has exited and both streams are
// fully consumed.
func (r Runner) RunStreaming(ctx context.Context, exe string, args []string, sink Sink) (int, error) {
	cmd := r.command(ctx, exe, args)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, &SpawnError{Exe: exe, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, &SpawnError{Exe: exe, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return -1, &SpawnError{Exe: exe, Err: err}
	}

	var g errgroup.Group
	g.Go(func() error { return forward(stdout, sink.Stdout) })
	g.Go(func() error { return forward(stderr, sink.Stderr) })
	// Pipes must be read to EOF before Wait closes them.
	readErr := g.Wait()

	code, err := exitCode(cmd.Wait())
	if err != nil {
		return code, err
	}
	if readErr != nil {
		return code, fmt.Errorf("read output of %s: %w", exe, readErr)
	}
	return code, nil
}

func (r Runner) command(ctx context.Context, exe string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, exe, args...) //nolint:gosec
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func forward(rd io.Reader, emit func(string)) error {
	lines := Lines(rd)
	for line := range lines.All() {
		if isBlank(line) {
			continue
		}
		emit(line)
	}
	if err := lines.Err(); err != nil {
		// keep the pipe flowing so the child never blocks on a full buffer
		_, _ = io.Copy(io.Discard, rd)
		return err
	}
	return nil
}

// exitCode maps the error from Wait to an exit status. Exit failures are not
// errors; anything else (e.g. I/O copy failures) is returned.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return -1, err
}
