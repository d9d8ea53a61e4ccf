// Package install makes sure the scrcpy release is unpacked locally,
// downloading and extracting the release archive when the executable is
// missing.
//
// Presence of the executable is the only validity check: an empty or
// truncated file at that path counts as installed.
package install

import (
	"context"
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"audiocel/internal/config"
	"audiocel/internal/system"
	appver "audiocel/internal/version"
)

// Installer downloads and unpacks the configured scrcpy release.
type Installer struct {
	cfg    config.Config
	client *resty.Client
	out    io.Writer
	log    *clog.Logger

	// Progress receives a redrawn progress bar while downloading; nil disables it.
	Progress io.Writer
}

// New returns an Installer printing user messages to out.
func New(cfg config.Config, out io.Writer, logger *clog.Logger) *Installer {
	client := resty.New().
		SetHeader("User-Agent", "audiocel/"+appver.AppVersion)
	return &Installer{cfg: cfg, client: client, out: out, log: system.Or(logger)}
}

// Installed reports whether the scrcpy executable exists.
func (i *Installer) Installed() bool {
	_, err := os.Stat(i.cfg.ScrcpyExe())
	return err == nil
}

// EnsureInstalled downloads and extracts the release unless the scrcpy
// executable is already present. It performs at most one GET request and
// never retries.
func (i *Installer) EnsureInstalled(ctx context.Context) error {
	if err := os.MkdirAll(i.cfg.ToolsDir, 0o755); err != nil {
		return fmt.Errorf("criar diretório %s: %w", i.cfg.ToolsDir, err)
	}
	if i.Installed() {
		fmt.Fprintf(i.out, "scrcpy encontrado: %s\n", i.cfg.ScrcpyExe())
		return nil
	}

	url := i.cfg.DownloadURL()
	fmt.Fprintf(i.out, "Baixando scrcpy %s...\n", i.cfg.Version)
	i.log.Info("downloading release", "url", url, "dest", i.cfg.ArchivePath())
	if err := i.download(ctx, url, i.cfg.ArchivePath()); err != nil {
		return err
	}

	fmt.Fprintln(i.out, "Extraindo...")
	n, err := extract(i.cfg.ArchivePath(), i.cfg.ToolsDir)
	if err != nil {
		return err
	}
	if !i.Installed() {
		return &ExtractionError{
			Archive: i.cfg.ArchivePath(),
			Err:     fmt.Errorf("%s ausente após a extração", i.cfg.ScrcpyExe()),
		}
	}
	i.log.Info("release extracted", "dir", i.cfg.InstallDir(), "files", n)
	fmt.Fprintln(i.out, "OK!")
	return nil
}
