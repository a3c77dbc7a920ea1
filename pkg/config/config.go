// Package config loads the tracker's TOML configuration: where the backing
// document lives and how persistence behaves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config controls where the tracker stores its data and how it persists.
type Config struct {
	// DataFile is the path of the JSON backing document.
	DataFile string `toml:"data_file"`
	// Autosave persists the store after every successful update instead of
	// only on exit.
	Autosave bool `toml:"autosave"`
	// AtomicWrite saves through a temp file and rename so a failed write
	// cannot truncate the existing document.
	AtomicWrite bool `toml:"atomic_write"`
	// GroupedView lists series grouped by category instead of flat A-Z.
	GroupedView bool `toml:"grouped_view"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataFile:    filepath.Join(baseDir(), "list.json"),
		Autosave:    true,
		AtomicWrite: true,
		GroupedView: true,
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.toml")
}

// Load reads the TOML config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.DataFile = ExpandHome(cfg.DataFile)
	return cfg, nil
}

// ExpandHome resolves a leading "~" in p to the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".seriestrack")
}
