package testutil

import (
	"path/filepath"
	"testing"
)

// DefaultFiles mirrors the default linux manifest
var DefaultFiles = []string{
	".bash_profile",
	".bashrc",
	".aliases",
	".aliases_linux",
	".aliases_mac",
	".functions",
	".functions_linux",
}

// Fixture is a source repository and a home directory side by side in a
// temp dir
type Fixture struct {
	Base string
	Repo string
	Home string
}

// NewFixture creates <tmp>/repo with .git, bash/<files> and bin/, plus an
// empty <tmp>/home. Each bash file's content is "repo:<name>".
func NewFixture(t *testing.T, files ...string) *Fixture {
	t.Helper()

	if len(files) == 0 {
		files = DefaultFiles
	}

	base := t.TempDir()
	// macOS temp dirs live behind a /var -> /private/var symlink
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	f := &Fixture{
		Base: base,
		Repo: CreateDir(t, base, "repo"),
		Home: CreateDir(t, base, "home"),
	}

	CreateDir(t, f.Repo, ".git")
	CreateFile(t, f.Repo, "bin/hello", "#!/bin/sh\necho hello\n")
	for _, name := range files {
		CreateFile(t, f.Repo, filepath.Join("bash", name), "repo:"+name)
	}

	return f
}

// HomePath joins parts below the fixture home
func (f *Fixture) HomePath(parts ...string) string {
	return filepath.Join(append([]string{f.Home}, parts...)...)
}

// RepoPath joins parts below the fixture repository
func (f *Fixture) RepoPath(parts ...string) string {
	return filepath.Join(append([]string{f.Repo}, parts...)...)
}
