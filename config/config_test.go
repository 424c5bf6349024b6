package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Precision)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "geohashing", cfg.Index.Technique)
	assert.Equal(t, 6, cfg.Index.Precision)
	assert.Equal(t, 3, cfg.Index.MaxRetries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
precision: 8
output: json
log:
  level: debug
index:
  technique: rtree
  max_retries: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Precision)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "rtree", cfg.Index.Technique)
	assert.Equal(t, 6, cfg.Index.Precision)
	assert.Equal(t, 5, cfg.Index.MaxRetries)
}

func TestLoadEnv(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("GEOCELL_PRECISION", "5")
	t.Setenv("GEOCELL_INDEX_TECHNIQUE", "quadtree")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Precision)
	assert.Equal(t, "quadtree", cfg.Index.Technique)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitConfig(t *testing.T) {
	chdirForTest(t, t.TempDir())
	require.NoError(t, InitConfig(""))
	require.NotNil(t, Cfg)
	assert.Equal(t, 12, Cfg.Precision)
}
