// Package config handles persistent user configuration for ecoprint.
//
// Configuration is stored as JSON at ~/.config/ecoprint/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Every value is
// kept as the raw string the user typed so that the estimate command can
// coerce it the same way it coerces flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

const (
	appDir   = "ecoprint"
	fileName = "config.json"
)

// pathOverride replaces the default config file path in tests.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds the estimate defaults and CLI preferences that persist
// across invocations. An empty field means "not set".
type Config struct {
	// ServerLocation is a grid carbon intensity in kg CO2 per kWh.
	ServerLocation string `json:"server_location,omitempty"`

	// Region names a grid preset and is used when ServerLocation is empty.
	Region string `json:"region,omitempty"`

	CDN          string `json:"cdn,omitempty"`
	CachingLevel string `json:"caching_level,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
	Output       string `json:"output,omitempty"`

	// path is where the config was loaded from, for error messages.
	path string
}

// Path returns the config file location: the SetPath override if any,
// otherwise ecoprint/config.json under os.UserConfigDir.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file. A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. Values are trimmed but not validated,
// so a file with a bad value can still be repaired with "config set".
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{path: path}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	for _, k := range Keys {
		k.Set(cfg, strings.TrimSpace(k.Get(cfg)))
	}
	cfg.path = path

	return cfg, nil
}

// Validate checks every set value against its key. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error
	for i := range Keys {
		if err := Keys[i].Check(Keys[i].Get(c)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(errs...)
	if c.path != "" {
		return fmt.Errorf("config %s: %w", c.path, err)
	}
	return fmt.Errorf("config: %w", err)
}

// Save writes the config back to where it was loaded from, or to Path.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return err
		}
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path through a temporary file, so a failed
// write never leaves a truncated config behind.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	c.path = path
	return nil
}
