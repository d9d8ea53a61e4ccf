// Package config builds the immutable launcher configuration: the scrcpy
// release to install, where to fetch it from and where to unpack it.
//
// A Config is assembled once at startup from three sources, in priority
// order: environment variables, the yaml config file and built-in defaults.
// Every path the installer, device check and launcher need is derived from it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	clog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultVersion        = "v3.3.1"
	DefaultReleaseBaseURL = "https://github.com"
	DefaultProject        = "Genymobile/scrcpy"
	DefaultLogLevel       = "info"

	packagePrefix = "scrcpy-win64-"
	scrcpyBinary  = "scrcpy.exe"
	adbBinary     = "adb.exe"
)

// Config is passed by value; nothing mutates it after Load returns.
type Config struct {
	Version        string `yaml:"version,omitempty" env:"AUDIOCEL_SCRCPY_VERSION"`
	ReleaseBaseURL string `yaml:"release_base_url,omitempty" env:"AUDIOCEL_RELEASE_BASE_URL"`
	Project        string `yaml:"project,omitempty" env:"AUDIOCEL_RELEASE_PROJECT"`
	ToolsDir       string `yaml:"tools_dir,omitempty" env:"AUDIOCEL_TOOLS_DIR"`
	LogLevel       string `yaml:"log_level,omitempty" env:"AUDIOCEL_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:        DefaultVersion,
		ReleaseBaseURL: DefaultReleaseBaseURL,
		Project:        DefaultProject,
		ToolsDir:       defaultToolsDir(),
		LogLevel:       DefaultLogLevel,
	}
}

// Load resolves the config file location and builds the configuration.
func Load() (Config, error) {
	p, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(p)
}

// LoadFrom builds the configuration using the yaml file at path.
// A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	return newBuilder().withEnv().withFile(path).withDefaults().build()
}

// PackageName is the release asset name without extension, e.g. scrcpy-win64-v3.3.1.
func (c Config) PackageName() string { return packagePrefix + c.Version }

// ArchiveName is the downloaded release asset file name.
func (c Config) ArchiveName() string { return c.PackageName() + ".zip" }

// ArchivePath is where the downloaded archive is written.
func (c Config) ArchivePath() string { return filepath.Join(c.ToolsDir, c.ArchiveName()) }

// InstallDir is the directory the archive unpacks into.
func (c Config) InstallDir() string { return filepath.Join(c.ToolsDir, c.PackageName()) }

// ScrcpyExe is the mirroring tool executable.
func (c Config) ScrcpyExe() string { return filepath.Join(c.InstallDir(), scrcpyBinary) }

// AdbExe is the device bridge bundled with the release.
func (c Config) AdbExe() string { return filepath.Join(c.InstallDir(), adbBinary) }

// DownloadURL is <base>/<project>/releases/download/<version>/<archive>.
func (c Config) DownloadURL() string {
	base := strings.TrimRight(c.ReleaseBaseURL, "/")
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", base, c.Project, c.Version, c.ArchiveName())
}

// Save writes cfg as yaml to path, creating parent dirs.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// CanonicalVersion returns v with surrounding space removed and a leading "v".
func CanonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

func (c Config) validate() error {
	var errs []error
	if c.Version == "" || strings.ContainsAny(c.Version, `/\ `) {
		errs = append(errs, fmt.Errorf("version %q", c.Version))
	}
	if u, err := url.Parse(c.ReleaseBaseURL); err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		errs = append(errs, fmt.Errorf("release base url %q", c.ReleaseBaseURL))
	}
	if parts := strings.Split(c.Project, "/"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		errs = append(errs, fmt.Errorf("project %q (want owner/name)", c.Project))
	}
	if strings.TrimSpace(c.ToolsDir) == "" {
		errs = append(errs, errors.New("empty tools dir"))
	}
	if _, err := clog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level %q", c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// builder merges config sources; earlier sources take precedence.
type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 3)}
}

func (b *builder) withEnv() *builder {
	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *builder) withFile(path string) *builder {
	if strings.TrimSpace(path) == "" {
		return b
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.err = errors.Join(b.err, fmt.Errorf("read config file: %w", err))
		}
		return b
	}
	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("parse config file %s: %w", path, err))
		return b
	}
	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *builder) withDefaults() *builder {
	def := Default()
	b.configs = append(b.configs, &def)
	return b
}

func (b *builder) build() (Config, error) {
	if b.err != nil {
		return Config{}, fmt.Errorf("error occurred during building config: %w", b.err)
	}
	cfg := Config{}
	for _, c := range b.configs {
		if err := mergo.Merge(&cfg, c); err != nil {
			return Config{}, fmt.Errorf("error merging configs: %w", err)
		}
	}
	cfg.Version = CanonicalVersion(cfg.Version)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
