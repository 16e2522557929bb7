package locator

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodRemote = StaticRemote{URL: "git@github.com:alice/utils.git"}

func TestLocateExplicitPath(t *testing.T) {
	f := testutil.NewFixture(t)

	root, err := Locate(Options{
		ExplicitPath: f.Repo,
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)

	assert.Equal(t, f.Repo, root.Path)
	assert.Equal(t, "utils", root.Name)
	assert.Equal(t, goodRemote.URL, root.RemoteURL)
}

func TestLocateExplicitPathTilde(t *testing.T) {
	f := testutil.NewFixture(t)

	root, err := Locate(Options{
		ExplicitPath: "~/repo",
		Home:         f.Base,
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, f.Repo, root.Path)
}

type rootRecorder struct {
	url  string
	root string
}

func (r *rootRecorder) RemoteURL(root string) (string, error) {
	r.root = root
	return r.url, nil
}

func TestLocateExplicitPathSymlink(t *testing.T) {
	f := testutil.NewFixture(t)
	link := filepath.Join(f.Base, "dotfiles")
	testutil.CreateSymlink(t, f.Repo, link)

	remote := &rootRecorder{url: goodRemote.URL}
	root, err := Locate(Options{
		ExplicitPath: link,
		ExpectedName: "utils",
		Remote:       remote,
	})
	require.NoError(t, err)

	assert.Equal(t, f.Repo, root.Path, "symlinks in -p are resolved")
	assert.Equal(t, f.Repo, remote.root)
}

func TestLocateExplicitPathInvalid(t *testing.T) {
	f := testutil.NewFixture(t)
	plain := testutil.CreateDir(t, f.Base, "plain")
	file := testutil.CreateFile(t, f.Base, "file", "x")

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(f.Base, "missing")},
		{"regular file", file},
		{"directory without .git", plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(Options{
				ExplicitPath: tt.path,
				ExpectedName: "utils",
				Remote:       goodRemote,
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestLocateSearchesUpward(t *testing.T) {
	f := testutil.NewFixture(t)
	deep := testutil.CreateDir(t, f.Repo, "bin/sub/dir")

	root, err := Locate(Options{
		StartDirs:    []string{deep},
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, f.Repo, root.Path)
}

func TestLocateTriesStartDirsInOrder(t *testing.T) {
	f := testutil.NewFixture(t)
	outside := testutil.CreateDir(t, f.Base, "elsewhere")

	root, err := Locate(Options{
		StartDirs:    []string{"", outside, f.RepoPath("bash")},
		MaxDepth:     2,
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, f.Repo, root.Path)
}

func TestLocateSearchIsBounded(t *testing.T) {
	f := testutil.NewFixture(t)
	deep := testutil.CreateDir(t, f.Repo, "a/b/c/d")

	_, err := Locate(Options{
		StartDirs:    []string{deep},
		MaxDepth:     4, // d, c, b, a: repo itself is the fifth
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))

	root, err := Locate(Options{
		StartDirs:    []string{deep},
		MaxDepth:     5,
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, f.Repo, root.Path)
}

func TestLocateWrongProject(t *testing.T) {
	f := testutil.NewFixture(t)

	_, err := Locate(Options{
		ExplicitPath: f.Repo,
		ExpectedName: "utils",
		Remote:       StaticRemote{URL: "https://github.com/alice/dotfiles.git"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongProject))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "utils", details["expected"])
	assert.Equal(t, "dotfiles", details["actual"])
}

func TestLocateNameIsCaseSensitive(t *testing.T) {
	f := testutil.NewFixture(t)

	_, err := Locate(Options{
		ExplicitPath: f.Repo,
		ExpectedName: "utils",
		Remote:       StaticRemote{URL: "git@github.com:alice/Utils.git"},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongProject))
}

func TestLocateNoRemote(t *testing.T) {
	f := testutil.NewFixture(t)

	tests := []struct {
		name   string
		remote RemoteReader
	}{
		{"empty url", StaticRemote{}},
		{"reader error", StaticRemote{Err: fmt.Errorf("exit status 1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(Options{
				ExplicitPath: f.Repo,
				ExpectedName: "utils",
				Remote:       tt.remote,
			})
			assert.True(t, errors.IsErrorCode(err, errors.ErrNoRemoteConfigured))
		})
	}
}

func TestFindRootInMemory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/src/utils/.git", 0755))
	require.NoError(t, mem.MkdirAll("/src/utils/bash/deep", 0755))
	fs := filesystem.NewAferoFS(mem)

	root, ok := FindRoot(fs, "/src/utils/bash/deep", 10)
	assert.True(t, ok)
	assert.Equal(t, "/src/utils", root)

	_, ok = FindRoot(fs, "/src", 10)
	assert.False(t, ok, "search stops at the filesystem root")
}

func TestLocateWorktreeGitFile(t *testing.T) {
	base := t.TempDir()
	repo := testutil.CreateDir(t, base, "wt")
	testutil.CreateFile(t, repo, ".git", "gitdir: /elsewhere/.git/worktrees/wt\n")

	root, err := Locate(Options{
		StartDirs:    []string{repo},
		ExpectedName: "utils",
		Remote:       goodRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(repo), filepath.Base(root.Path))
}
