package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Autosave)
	assert.True(t, cfg.AtomicWrite)
	assert.True(t, cfg.GroupedView)
	assert.True(t, strings.HasSuffix(cfg.DataFile, "list.json"))
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_file = "/tmp/tracker/list.json"
autosave = false
atomic_write = false
grouped_view = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tracker/list.json", cfg.DataFile)
	assert.False(t, cfg.Autosave)
	assert.False(t, cfg.AtomicWrite)
	assert.False(t, cfg.GroupedView)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`data_file = "custom.json"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.json", cfg.DataFile)
	assert.True(t, cfg.Autosave)
	assert.True(t, cfg.GroupedView)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_file = ["), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExpandsHomeInDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`data_file = "~/series/list.json"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "series", "list.json"), cfg.DataFile)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "relative", ExpandHome("relative"))
}
