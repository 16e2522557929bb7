package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDir(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/repo/bin", 0755))
	require.NoError(t, fs.WriteFile("/repo/file", nil, 0644))

	assert.True(t, IsDir(fs, "/repo/bin"))
	assert.False(t, IsDir(fs, "/repo/file"))
	assert.False(t, IsDir(fs, "/repo/missing"))
}

func TestExists(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("/home/u/.bashrc", []byte("rc"), 0644))

	assert.True(t, Exists(fs, "/home/u/.bashrc"))
	assert.True(t, Exists(fs, "/home/u"))
	assert.False(t, Exists(fs, "/home/u/.profile"))
}
