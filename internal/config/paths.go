package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the audiocel config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/audiocel; on macOS
// to ~/Library/Application Support/audiocel; and on Windows to %AppData%/audiocel.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "audiocel"), nil
}

// FilePath returns the config file location. AUDIOCEL_CONFIG overrides it.
func FilePath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("AUDIOCEL_CONFIG")); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// defaultToolsDir mirrors the layout of the packaged launcher: a tools/
// directory next to the executable.
func defaultToolsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "tools"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "tools")
}
