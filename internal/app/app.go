// Package app wires the launcher together: install scrcpy, check for a
// device, then hand control to the menu loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"audiocel/internal/config"
	"audiocel/internal/device"
	"audiocel/internal/install"
	"audiocel/internal/launch"
	"audiocel/internal/menu"
	"audiocel/internal/system"
	"audiocel/internal/tools"
	"audiocel/internal/ui"
)

// App holds the console streams and configuration for one run.
type App struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Log    *clog.Logger

	// Progress receives the download progress bar; nil disables it.
	Progress io.Writer

	runner tools.Runner
}

// New returns an App bound to the process's standard streams.
func New(cfg config.Config) *App {
	a := &App{Config: cfg, In: os.Stdin, Out: os.Stdout, Err: os.Stderr, Log: system.Logger}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		a.Progress = os.Stderr
	}
	return a
}

// Installer returns the asset installer for this run.
func (a *App) Installer() *install.Installer {
	inst := install.New(a.Config, a.Out, a.Log)
	inst.Progress = a.Progress
	return inst
}

// Checker returns the device checker for this run.
func (a *App) Checker() *device.Checker {
	return device.NewChecker(a.Config, a.runner, a.Out, a.Log)
}

// Launcher returns a launcher streaming scrcpy output to the console.
func (a *App) Launcher() *launch.Launcher {
	sink := tools.ConsoleSink{Out: a.Out, Err: a.Err}
	return launch.New(a.Config.ScrcpyExe(), a.runner, sink, a.Out, a.Log)
}

// Run performs the startup steps and runs the menu until the user quits.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprint(a.Out, ui.Banner())

	if err := a.Installer().EnsureInstalled(ctx); err != nil {
		return err
	}
	checker := a.Checker()
	if err := checker.EnsureVisible(ctx); err != nil {
		return err
	}

	acts := actions{launcher: a.Launcher(), checker: checker}
	loop := menu.NewLoop(menu.NewLinePrompter(a.In, a.Out), a.Out, acts)
	return loop.Run(ctx)
}

// Start runs the interactive launcher on the console.
func Start(ctx context.Context, cfg config.Config) error {
	return New(cfg).Run(ctx)
}

// actions adapts the launcher and checker to the menu.
type actions struct {
	launcher *launch.Launcher
	checker  *device.Checker
}

func (a actions) Launch(ctx context.Context, p launch.Preset) error {
	_, err := a.launcher.Launch(ctx, p)
	return err
}

func (a actions) Redetect(ctx context.Context) error {
	return a.checker.EnsureVisible(ctx)
}
