package locator

import (
	"strings"

	"github.com/go-git/go-git/v5"
)

// DefaultRemote is read when GitRemote.Name is empty
const DefaultRemote = "origin"

// RemoteReader returns the remote identity string of a repository
type RemoteReader interface {
	RemoteURL(root string) (string, error)
}

// GitRemote reads remote.<Name>.url from the repository config at root.
// Worktrees and .git files pointing elsewhere are followed.
type GitRemote struct {
	Name string
}

// RemoteURL implements RemoteReader. The first configured URL wins.
func (g GitRemote) RemoteURL(root string) (string, error) {
	name := g.Name
	if name == "" {
		name = DefaultRemote
	}

	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		return "", err
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return strings.TrimSpace(urls[0]), nil
}

// StaticRemote always answers with URL, or Err when set
type StaticRemote struct {
	URL string
	Err error
}

// RemoteURL implements RemoteReader
func (s StaticRemote) RemoteURL(string) (string, error) {
	return s.URL, s.Err
}

// ProjectName extracts the project token from a remote URL: the last path
// segment, split on '/' or ':', without a trailing ".git".
//
//	git@github.com:alice/utils.git -> utils
//	https://github.com/alice/utils/ -> utils
func ProjectName(remoteURL string) string {
	s := strings.TrimRight(strings.TrimSpace(remoteURL), "/")
	if i := strings.LastIndexAny(s, "/:"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, ".git")
}
