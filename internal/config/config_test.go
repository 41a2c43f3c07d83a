package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, "doom1.wad", config.IWAD)
	assert.Equal(t, "doom.toml", config.Metadata)
	assert.Equal(t, 16, config.LevelCacheSize)
	assert.False(t, config.Verbose)
	assert.NoError(t, config.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wadinfo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("iwad: doom2.wad\nverbose: true\n"), 0o644))

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "doom2.wad", config.IWAD)
		assert.Equal(t, "doom.toml", config.Metadata)
		assert.Equal(t, 16, config.LevelCacheSize)
		assert.True(t, config.Verbose)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("iwad: [unterminated\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad cache size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.yaml")
		require.NoError(t, os.WriteFile(path, []byte("level_cache_size: 0\n"), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "level_cache_size")
	})
}
