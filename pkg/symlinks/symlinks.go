// Package symlinks makes each configured link point at its target,
// replacing whatever was at the link path before.
package symlinks

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/synthfs"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/rs/zerolog"
)

// Manager ensures symlink mappings
type Manager struct {
	FS       types.FS
	Reporter types.Reporter

	logger zerolog.Logger
}

// New creates a Manager
func New(fsys types.FS, reporter types.Reporter) *Manager {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if reporter == nil {
		reporter = types.NopReporter{}
	}
	return &Manager{
		FS:       fsys,
		Reporter: reporter,
		logger:   logging.GetLogger("symlinks"),
	}
}

// Ensure processes mappings in order and returns the link paths handled
func (m *Manager) Ensure(mappings []types.SymlinkMapping, mode types.RunMode) ([]string, error) {
	linked := make([]string, 0, len(mappings))
	ops := synthfs.NewExecutor(m.FS, mode.IsDryRun())

	for _, mapping := range mappings {
		if err := m.ensureOne(ops, mapping, mode); err != nil {
			return linked, err
		}
		linked = append(linked, mapping.Link)
	}

	return linked, nil
}

func (m *Manager) ensureOne(ops *synthfs.Executor, mapping types.SymlinkMapping, mode types.RunMode) error {
	link, target := mapping.Link, mapping.Target

	// Anything at the link path goes: file, directory or stale link.
	if info, err := m.FS.Lstat(link); err == nil {
		if err := ops.Remove(link); err != nil {
			return errors.Wrapf(err, errors.ErrRemove, "failed to remove existing %s", link).
				WithDetail("path", link)
		}
		m.logger.Debug().
			Str("link", link).
			Bool("wasSymlink", info.Mode()&os.ModeSymlink != 0).
			Msg("Cleared link path")
		m.Reporter.Report(types.Action{Kind: types.ActionRemove, Target: link, Mode: mode})
	}

	parent := filepath.Dir(link)
	if !filesystem.Exists(m.FS, parent) {
		if err := ops.CreateDir(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent).
				WithDetail("path", parent)
		}
		m.Reporter.Report(types.Action{Kind: types.ActionMkdir, Target: parent, Mode: mode})
	}

	if err := ops.Symlink(target, link); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s -> %s", link, target).
			WithDetail("link", link).
			WithDetail("target", target)
	}
	if !mode.IsDryRun() {
		m.logger.Info().Str("link", link).Str("target", target).Msg("Created symlink")
	}

	m.Reporter.Report(types.Action{Kind: types.ActionSymlink, Source: target, Target: link, Mode: mode})
	return nil
}
