package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expense-atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads data file and granularity", func(t *testing.T) {
		path := writeConfig(t, "data_file: export.csv\ngranularity: weekly\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "export.csv", cfg.DataFile)
		assert.Equal(t, "weekly", cfg.Granularity)
	})

	t.Run("granularity defaults to monthly", func(t *testing.T) {
		path := writeConfig(t, "data_file: export.csv\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "monthly", cfg.Granularity)
	})

	t.Run("data_file is required", func(t *testing.T) {
		path := writeConfig(t, "granularity: daily\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
