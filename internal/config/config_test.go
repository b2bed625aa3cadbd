package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gwierzchowski/toy-trx-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", "transactions.csv")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, config.DefaultQueueScale, cfg.QueueScale)
	assert.False(t, cfg.NoHeader)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "txengine.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 8\nno_header = true\n"), 0o644))

	cfg, err := config.Load(path, "transactions.csv")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.NoHeader)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "txengine.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 8\n"), 0o644))
	t.Setenv("TXENGINE_WORKERS", "16")

	cfg, err := config.Load(path, "transactions.csv")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load("/nonexistent/txengine.toml", "transactions.csv")
	assert.Error(t, err)
}

func TestValidateRequiresInputPath(t *testing.T) {
	cfg := &config.Config{Workers: 4, QueueScale: 10}
	assert.Error(t, cfg.Validate())
}

func TestLoadEmptyInputPathErrors(t *testing.T) {
	_, err := config.Load("", "")
	assert.Error(t, err)
}

func TestValidateRejectsZeroWorkers(t *testing.T) {
	cfg := &config.Config{InputPath: "x.csv", Workers: 0, QueueScale: 1}
	assert.Error(t, cfg.Validate())
}
