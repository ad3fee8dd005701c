package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/codice-tools/plastic-ctl/internal/system"
)

const (
	// DefaultPath is where the host configuration lives unless --config overrides it.
	DefaultPath = "/etc/plastic-ctl/config.toml"

	// DefaultCMPath is the client binary resolved from PATH when not configured.
	DefaultCMPath = "cm"

	// DefaultTimeout bounds a single cm invocation.
	DefaultTimeout = 30 * time.Minute
)

// Config holds the host configuration loaded from config.toml.
type Config struct {
	// CMPath is the path to the cm client binary.
	CMPath string `toml:"cm_path"`

	// ExtraArgs is a shell-quoted string of arguments prepended to every
	// cm invocation (e.g. `--machinereadable "--fieldseparator=#"`).
	ExtraArgs string `toml:"extra_args"`

	// DefaultSelector is used by checkout when no selector is given.
	DefaultSelector string `toml:"default_selector"`

	// TimeoutSeconds bounds a single cm invocation. Zero means DefaultTimeout.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		CMPath: DefaultCMPath,
	}
}

// Load reads and validates the configuration at path. A missing file is
// not an error: defaults apply, so the tool works with no config at all.
func Load(fsys system.FileSystem, path string) (*Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.CMPath == "" {
		return fmt.Errorf("cm_path cannot be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	if _, err := shellquote.Split(c.ExtraArgs); err != nil {
		return fmt.Errorf("extra_args is not valid shell quoting: %w", err)
	}
	return nil
}

// ExtraArgv returns ExtraArgs split into argv form.
func (c *Config) ExtraArgv() []string {
	argv, err := shellquote.Split(c.ExtraArgs)
	if err != nil {
		// Validate rejects unparseable values at load time.
		return nil
	}
	return argv
}

// Timeout returns the configured per-invocation timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds == 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
