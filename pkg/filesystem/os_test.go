package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	f, err := fs.Open(testFile)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = fs.Open(filepath.Join(tmpDir, "missing"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))
	require.NoError(t, fs.Mkdir(filepath.Join(tmpDir, "fresh"), 0755))
	assert.Error(t, fs.Mkdir(filepath.Join(tmpDir, "fresh"), 0755), "Mkdir must fail on an existing dir")

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.Symlink(testFile, link))
	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, testFile, target)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	moved := filepath.Join(tmpDir, "moved.txt")
	require.NoError(t, fs.Rename(testFile, moved))
	require.NoError(t, fs.Rename(moved, testFile))

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, "sub")))
	assert.False(t, Exists(fs, filepath.Join(tmpDir, "sub")))
}
