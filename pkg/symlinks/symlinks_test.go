package symlinks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/output"
	"github.com/arthur-debert/dotinstall/pkg/testutil"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureReplacesWhateverIsThere(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, link string)
	}{
		{"nothing", func(t *testing.T, link string) {}},
		{"regular file", func(t *testing.T, link string) {
			testutil.CreateFile(t, filepath.Dir(link), filepath.Base(link), "stale")
		}},
		{"directory", func(t *testing.T, link string) {
			dir := testutil.CreateDir(t, filepath.Dir(link), filepath.Base(link))
			testutil.CreateFile(t, dir, "old-script", "x")
		}},
		{"broken symlink", func(t *testing.T, link string) {
			testutil.CreateSymlink(t, "/does/not/exist", link)
		}},
		{"symlink elsewhere", func(t *testing.T, link string) {
			testutil.CreateSymlink(t, t.TempDir(), link)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.NewFixture(t)
			link := f.HomePath("bin", "utils")
			testutil.CreateDir(t, f.Home, "bin")
			tt.setup(t, link)

			linked, err := New(filesystem.NewOS(), nil).Ensure(
				[]types.SymlinkMapping{{Link: link, Target: f.RepoPath("bin")}}, types.RunModeLive)
			require.NoError(t, err)
			assert.Equal(t, []string{link}, linked)

			got, err := os.Readlink(link)
			require.NoError(t, err)
			assert.Equal(t, f.RepoPath("bin"), got)

			resolved, err := filepath.EvalSymlinks(link)
			require.NoError(t, err)
			assert.Equal(t, f.RepoPath("bin"), resolved)
		})
	}
}

func TestEnsureCreatesParent(t *testing.T) {
	f := testutil.NewFixture(t)
	link := f.HomePath(".local", "bin", "utils")

	rec := &output.Recorder{}
	_, err := New(filesystem.NewOS(), rec).Ensure(
		[]types.SymlinkMapping{{Link: link, Target: f.RepoPath("bin")}}, types.RunModeLive)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(link, "hello"))

	mkdirs := rec.Of(types.ActionMkdir)
	require.Len(t, mkdirs, 1)
	assert.Equal(t, f.HomePath(".local", "bin"), mkdirs[0].Target)
}

func TestEnsureMultipleMappings(t *testing.T) {
	f := testutil.NewFixture(t)

	mappings := []types.SymlinkMapping{
		{Link: f.HomePath("bin", "utils"), Target: f.RepoPath("bin")},
		{Link: f.HomePath(".config", "utils-bash"), Target: f.RepoPath("bash")},
	}

	linked, err := New(filesystem.NewOS(), nil).Ensure(mappings, types.RunModeLive)
	require.NoError(t, err)
	assert.Equal(t, []string{mappings[0].Link, mappings[1].Link}, linked)

	assert.FileExists(t, f.HomePath(".config", "utils-bash", ".bashrc"))
}

func TestEnsureDryRun(t *testing.T) {
	f := testutil.NewFixture(t)
	testutil.CreateFile(t, f.Home, "bin/utils", "stale")
	before := testutil.Snapshot(t, f.Home)

	rec := &output.Recorder{}
	_, err := New(filesystem.NewOS(), rec).Ensure(
		[]types.SymlinkMapping{
			{Link: f.HomePath("bin", "utils"), Target: f.RepoPath("bin")},
			{Link: f.HomePath("new", "dir", "utils"), Target: f.RepoPath("bin")},
		}, types.RunModeDryRun)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, f.Home))

	kinds := make([]types.ActionKind, 0, len(rec.Actions))
	for _, a := range rec.Actions {
		assert.Equal(t, types.RunModeDryRun, a.Mode)
		kinds = append(kinds, a.Kind)
	}
	assert.Equal(t, []types.ActionKind{
		types.ActionRemove, types.ActionSymlink,
		types.ActionMkdir, types.ActionSymlink,
	}, kinds)
}

func TestEnsureFailures(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/repo/bin", 0755))
	require.NoError(t, mem.MkdirAll("/home/u/bin", 0755))
	require.NoError(t, afero.WriteFile(mem, "/home/u/bin/utils", []byte("stale"), 0644))
	ro := filesystem.NewAferoFS(afero.NewReadOnlyFs(mem))

	tests := []struct {
		name string
		link string
		code errors.ErrorCode
	}{
		{"remove fails", "/home/u/bin/utils", errors.ErrRemove},
		{"mkdir fails", "/home/u/missing/utils", errors.ErrDirCreate},
		{"symlink fails", "/home/u/bin/other", errors.ErrSymlinkCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(ro, nil).Ensure(
				[]types.SymlinkMapping{{Link: tt.link, Target: "/repo/bin"}}, types.RunModeLive)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
