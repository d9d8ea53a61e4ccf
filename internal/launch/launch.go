package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	clog "github.com/charmbracelet/log"

	"audiocel/internal/system"
	"audiocel/internal/tools"
)

// StreamRunner is the streaming-mode subset of tools.Runner.
type StreamRunner interface {
	RunStreaming(ctx context.Context, exe string, args []string, sink tools.Sink) (int, error)
}

// Launcher runs scrcpy in the foreground with a preset.
type Launcher struct {
	exe  string
	run  StreamRunner
	sink tools.Sink
	out  io.Writer
	log  *clog.Logger

	// holdInterrupts keeps Ctrl+C from killing the launcher while scrcpy
	// runs; the terminal still delivers it to scrcpy.
	holdInterrupts bool
}

// New returns a Launcher that streams scrcpy output to sink and prints
// its own messages to out.
func New(exe string, run StreamRunner, sink tools.Sink, out io.Writer, logger *clog.Logger) *Launcher {
	return &Launcher{exe: exe, run: run, sink: sink, out: out, log: system.Or(logger), holdInterrupts: true}
}

// Launch runs scrcpy with the preset's arguments and blocks until it exits.
func (l *Launcher) Launch(ctx context.Context, p Preset) (int, error) {
	fmt.Fprintln(l.out, p.Title())
	fmt.Fprintln(l.out, "Pressione Ctrl+C para encerrar o scrcpy e voltar ao menu.")

	if l.holdInterrupts {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		defer signal.Stop(sig)
	}

	args := Args(p)
	l.log.Debug("starting scrcpy", "preset", p.Name(), "args", args)
	code, err := l.run.RunStreaming(ctx, l.exe, args, l.sink)
	if err != nil {
		return code, err
	}
	l.log.Info("scrcpy exited", "preset", p.Name(), "code", code)
	return code, nil
}
