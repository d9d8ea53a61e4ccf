// Package device checks that a USB device is visible to the adb bridge
// bundled with scrcpy.
package device

import (
	"context"
	"fmt"
	"io"
	"strings"

	clog "github.com/charmbracelet/log"

	"audiocel/internal/config"
	"audiocel/internal/system"
	"audiocel/internal/tools"
)

// readyMarker is what `adb devices` prints after the tab for an
// authorized, connected device.
const readyMarker = "\tdevice"

// Guidance is printed when no device is in the ready state.
var Guidance = []string{
	"Nenhum dispositivo em modo 'device'. Dicas:",
	" - Ative Opções do desenvolvedor > Depuração USB",
	" - No telefone, aceite a impressão digital do PC quando solicitado",
	" - Use cabo USB de dados e selecione MTP/Transf. Arquivos",
}

// Runner is the captured-mode subset of tools.Runner.
type Runner interface {
	RunCaptured(ctx context.Context, exe string, args ...string) (tools.Result, error)
}

// BridgeError reports that adb ran but exited with a failure status.
type BridgeError struct {
	ExitCode int
	Stderr   string
}

func (e *BridgeError) Error() string {
	msg := fmt.Sprintf("ADB não pôde ser executado (código %d). Verifique permissões.", e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += " " + s
	}
	return msg
}

// Checker runs the startup device check.
type Checker struct {
	cfg config.Config
	run Runner
	out io.Writer
	log *clog.Logger
}

func NewChecker(cfg config.Config, run Runner, out io.Writer, logger *clog.Logger) *Checker {
	return &Checker{cfg: cfg, run: run, out: out, log: system.Or(logger)}
}

// EnsureVisible warms up scrcpy, lists devices through adb and prints the
// listing. A missing ready device only produces guidance; spawn failures
// and a failing adb are returned.
func (c *Checker) EnsureVisible(ctx context.Context) error {
	fmt.Fprintln(c.out, "Verificando dispositivo via ADB...")
	if err := c.warmUp(ctx); err != nil {
		return err
	}

	listing, err := c.listing(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, strings.TrimRight(listing, "\r\n"))
	if !HasReadyDevice(listing) {
		for _, line := range Guidance {
			fmt.Fprintln(c.out, line)
		}
	}
	return nil
}

// Snapshot runs `adb devices` and parses the result.
func (c *Checker) Snapshot(ctx context.Context) (Snapshot, error) {
	listing, err := c.listing(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return ParseListing(listing), nil
}

// warmUp runs `scrcpy --version`; the output only feeds the debug log.
func (c *Checker) warmUp(ctx context.Context) error {
	res, err := c.run.RunCaptured(ctx, c.cfg.ScrcpyExe(), "--version")
	if err != nil {
		return err
	}
	got := tools.ParseVersion(res.Stdout)
	c.log.Debug("scrcpy warm-up", "exit", res.ExitCode, "version", got)
	if got != "" && got != tools.NormalizeVersion(c.cfg.Version) {
		c.log.Warn("installed scrcpy differs from configured release", "installed", got, "configured", c.cfg.Version)
	}
	return nil
}

func (c *Checker) listing(ctx context.Context) (string, error) {
	res, err := c.run.RunCaptured(ctx, c.cfg.AdbExe(), "devices")
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &BridgeError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}

// HasReadyDevice reports whether any line of an `adb devices` listing
// carries the ready marker.
func HasReadyDevice(listing string) bool {
	for _, line := range strings.Split(listing, "\n") {
		if strings.Contains(line, readyMarker) {
			return true
		}
	}
	return false
}
