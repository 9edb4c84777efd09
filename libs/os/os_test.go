package os_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmos "github.com/nimiq-community/go-nimiq-rpc/libs/os"
)

func TestEnsureDir(t *testing.T) {
	tmp := t.TempDir()

	dir := filepath.Join(tmp, "a", "b")
	require.NoError(t, tmos.EnsureDir(dir, 0700))
	assert.True(t, tmos.FileExists(dir))

	// idempotent
	require.NoError(t, tmos.EnsureDir(dir, 0700))

	// a file in the way
	file := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(file, []byte{}, 0600))
	require.Error(t, tmos.EnsureDir(filepath.Join(file, "sub"), 0700))
	require.Error(t, tmos.EnsureDir(file, 0700))
}

func TestWriteFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	assert.False(t, tmos.FileExists(path))

	require.NoError(t, tmos.WriteFile(path, []byte("one"), 0600))
	require.NoError(t, tmos.WriteFile(path, []byte("two"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}
