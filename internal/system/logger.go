package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "audiocel",
})

// SetLevel applies a textual level ("debug", "info", ...) to Logger.
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// Discard returns a logger that drops everything; used by tests.
func Discard() *clog.Logger {
	return clog.New(io.Discard)
}

// Or returns l, or the shared Logger when l is nil.
func Or(l *clog.Logger) *clog.Logger {
	if l == nil {
		return Logger
	}
	return l
}
