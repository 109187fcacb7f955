package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/basket/internal/ir"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ir.Thresholds{MinSupport: 0.3, MinConfidence: 0.5}, cfg.Thresholds())
	assert.Equal(t, "text", cfg.Format)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("min_support: 0.6\nformat: markdown\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.MinSupport)
	assert.Equal(t, DefaultMinConfidence, cfg.MinConfidence)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "", cfg.Database)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"support above one", "min_support: 1.5\n"},
		{"negative confidence", "min_confidence: -0.2\n"},
		{"unknown format", "format: xml\n"},
		{"unknown key", "min_suport: 0.4\n"},
		{"wrong type", "min_support: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	cfg := Default()
	cfg.MinSupport = 0
	cfg.MinConfidence = 1
	assert.NoError(t, cfg.Validate())

	cfg.MinSupport = 1.0000001
	assert.Error(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basket.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_support: 0.25\ndatabase: runs.db\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.MinSupport)
	assert.Equal(t, "runs.db", cfg.Database)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: pdf\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

// xdg caches its directories at init, so tests must Reload after changing env.
func withConfigHome(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload) // runs after t.Setenv restores the environment
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()
	return dir
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	home := withConfigHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, AppName), 0755))
	path := filepath.Join(home, AppName, FileName)
	require.NoError(t, os.WriteFile(path, []byte("min_confidence: 0.9\n"), 0644))

	found, ok := DefaultPath()
	require.True(t, ok)
	assert.Equal(t, path, found)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.MinConfidence)
}

func TestLoadWithoutAnyFile(t *testing.T) {
	withConfigHome(t)

	_, ok := DefaultPath()
	assert.False(t, ok)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
