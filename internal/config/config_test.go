package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "soilworks", cfg.Name)
	assert.Equal(t, "bowles", cfg.Analysis.ABCMethod)
	assert.Equal(t, "gibbs_holtz", cfg.Analysis.OPCMethod)
	assert.InDelta(t, 25.4, cfg.Analysis.TolSettlement, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Analysis, cfg.Analysis)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Analysis.ABCMethod = "meyerhof"
	cfg.Analysis.TolSettlement = 20.0
	cfg.Logging.DebugMode = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "meyerhof", loaded.Analysis.ABCMethod)
	assert.InDelta(t, 20.0, loaded.Analysis.TolSettlement, 1e-9)
	assert.True(t, loaded.Logging.DebugMode)
}

func TestLoadPartialFile(t *testing.T) {
	// Settings absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  abc_method: terzaghi\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "terzaghi", cfg.Analysis.ABCMethod)
	assert.Equal(t, "gibbs_holtz", cfg.Analysis.OPCMethod)
	assert.InDelta(t, 25.4, cfg.Analysis.TolSettlement, 1e-9)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Analysis.ABCMethod = "hansen"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Analysis.OPCMethod = "meyerhof"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Analysis.TolSettlement = 30
	assert.Error(t, cfg.Validate())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SOILWORKS_STORE_PATH", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
}
