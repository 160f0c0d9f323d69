package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	cities := []string{"chicago", "new york city", "washington"}

	assert.True(t, ContainsString("new york city", cities))
	assert.False(t, ContainsString("boston", cities))
	assert.False(t, ContainsString("chicago", nil))
}

func TestIndexOfString(t *testing.T) {
	header := []string{"", "Start Time", " Trip Duration "}

	assert.Equal(t, 1, IndexOfString("Start Time", header))
	assert.Equal(t, 2, IndexOfString("Trip Duration", header))
	assert.Equal(t, -1, IndexOfString("Gender", header))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 5\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "page_size: 5\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
