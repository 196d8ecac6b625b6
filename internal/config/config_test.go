package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Contains(t, cfg.Ignore, "__pycache__")
	assert.Contains(t, cfg.Ignore, "*.egg-info")
	assert.Equal(t, 0, cfg.Workers)
	assert.False(t, cfg.Alphabetical)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.NotEmpty(t, cfg.Ignore)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".pymap.yml")
	require.NoError(t, os.WriteFile(path, []byte("ignore:\n  - generated\nworkers: 2\nalphabetical: true\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"generated"}, cfg.Ignore)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Alphabetical)
}

func TestLoad_ZeroWorkersMeansNumCPU(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("workers", 0)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)

	v.Set("workers", -3)
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoad_EmptyIgnoreFallsBackToDefault(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("ignore", []string{})
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default().Ignore, cfg.Ignore)
}
