package locator

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/types"
)

// GitDirName marks a repository root
const GitDirName = ".git"

// DefaultMaxDepth bounds the upward search
const DefaultMaxDepth = 10

// Options configures Locate
type Options struct {
	// ExplicitPath skips auto-detection when set
	ExplicitPath string

	// StartDirs are tried in order during auto-detection
	StartDirs []string

	// ExpectedName must equal the project name derived from the remote
	ExpectedName string

	// MaxDepth is the number of directories inspected per start dir
	MaxDepth int

	// Home expands ~ in ExplicitPath
	Home string

	FS     types.FS
	Remote RemoteReader
}

// Locate resolves and validates the project root
func Locate(opts Options) (*types.ProjectRoot, error) {
	logger := logging.GetLogger("locator")

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Remote == nil {
		opts.Remote = GitRemote{}
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	var (
		root string
		err  error
	)
	if opts.ExplicitPath != "" {
		root, err = checkExplicit(opts.FS, opts.ExplicitPath, opts.Home)
	} else {
		root, err = search(opts.FS, opts.StartDirs, opts.MaxDepth)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Msg("Found project root")

	url, err := opts.Remote.RemoteURL(root)
	if err != nil || url == "" {
		e := errors.Newf(errors.ErrNoRemoteConfigured, "no remote configured for %s", root).
			WithDetail("root", root)
		e.Wrapped = err
		return nil, e
	}

	name := ProjectName(url)
	if name != opts.ExpectedName {
		return nil, errors.Newf(errors.ErrWrongProject,
			"wrong project at %s: expected %q, found %q", root, opts.ExpectedName, name).
			WithDetail("expected", opts.ExpectedName).
			WithDetail("actual", name).
			WithDetail("root", root)
	}

	logger.Info().Str("root", root).Str("project", name).Msg("Project validated")

	return &types.ProjectRoot{Path: root, Name: name, RemoteURL: url}, nil
}

func checkExplicit(fsys types.FS, path, home string) (string, error) {
	root, err := paths.Normalize(path, home)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "invalid project path %s", path)
	}
	// A symlinked checkout reports its real location.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	if !filesystem.IsDir(fsys, root) {
		return "", errors.Newf(errors.ErrInvalidPath, "project path is not a directory: %s", root).
			WithDetail("path", root)
	}
	if !filesystem.Exists(fsys, filepath.Join(root, GitDirName)) {
		return "", errors.Newf(errors.ErrInvalidPath, "project path is not a git repository: %s", root).
			WithDetail("path", root)
	}
	return root, nil
}

func search(fsys types.FS, starts []string, maxDepth int) (string, error) {
	for _, start := range starts {
		if start == "" {
			continue
		}
		if root, ok := FindRoot(fsys, start, maxDepth); ok {
			return root, nil
		}
	}
	return "", errors.Newf(errors.ErrRootNotFound,
		"no %s directory found within %d levels of %v", GitDirName, maxDepth, starts).
		WithDetail("starts", starts)
}

// FindRoot walks up from start, inspecting at most maxDepth directories
func FindRoot(fsys types.FS, start string, maxDepth int) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for i := 0; i < maxDepth; i++ {
		if filesystem.Exists(fsys, filepath.Join(dir, GitDirName)) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// DefaultStartDirs is the executable's directory followed by the working
// directory
func DefaultStartDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	return dirs
}
