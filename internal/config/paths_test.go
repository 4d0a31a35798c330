package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".shipwright"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".shipwright", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override takes precedence", func(t *testing.T) {
		t.Setenv("SHIPWRIGHT_CONFIG", "/custom/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})

	t.Run("defaults to home config", func(t *testing.T) {
		t.Setenv("SHIPWRIGHT_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Contains(t, path, ".shipwright")
		assert.Contains(t, path, "config.yaml")
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "absolute path",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "path with tilde",
			input:    "~/some/path",
			expected: filepath.Join(homeDir, "some/path"),
		},
		{
			name:     "tilde username unsupported",
			input:    "~other/path",
			expected: "~other/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnsureHomeDir(t *testing.T) {
	// Point the home directory at a temp dir so the test never touches
	// the real one.
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	require.NoError(t, EnsureHomeDir())

	info, err := os.Stat(filepath.Join(tmpDir, ".shipwright"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
