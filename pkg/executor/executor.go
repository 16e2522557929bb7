// Package executor removes stale destination entries and installs the
// mapped source files in their place.
package executor

import (
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/synthfs"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/rs/zerolog"
)

// Executor runs the remove and install steps. Every live failure is fatal
// and returned immediately; there are no retries.
type Executor struct {
	FS       types.FS
	Reporter types.Reporter

	logger zerolog.Logger
}

// New creates an Executor
func New(fsys types.FS, reporter types.Reporter) *Executor {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if reporter == nil {
		reporter = types.NopReporter{}
	}
	return &Executor{
		FS:       fsys,
		Reporter: reporter,
		logger:   logging.GetLogger("executor"),
	}
}

// Remove deletes each candidate, recursively for directories. It returns
// the paths removed (or that would be removed).
func (e *Executor) Remove(candidates []string, mode types.RunMode) ([]string, error) {
	removed := make([]string, 0, len(candidates))
	ops := synthfs.NewExecutor(e.FS, mode.IsDryRun())

	for _, path := range candidates {
		if err := ops.Remove(path); err != nil {
			return removed, errors.Wrapf(err, errors.ErrRemove, "failed to remove %s", path).
				WithDetail("path", path)
		}
		e.logger.Debug().Str("path", path).Bool("dryRun", mode.IsDryRun()).Msg("Removed")

		e.Reporter.Report(types.Action{Kind: types.ActionRemove, Target: path, Mode: mode})
		removed = append(removed, path)
	}

	return removed, nil
}

// Install copies each mapping's source to its destination
func (e *Executor) Install(mappings []types.FileMapping, mode types.RunMode) ([]string, error) {
	installed := make([]string, 0, len(mappings))
	ops := synthfs.NewExecutor(e.FS, mode.IsDryRun())

	for _, m := range mappings {
		if err := ops.Copy(m.Source, m.Destination); err != nil {
			return installed, errors.Wrapf(err, errors.ErrInstallCopy,
				"failed to install %s to %s", m.Source, m.Destination).
				WithDetail("source", m.Source).
				WithDetail("destination", m.Destination)
		}
		e.logger.Debug().
			Str("source", m.Source).
			Str("destination", m.Destination).
			Bool("dryRun", mode.IsDryRun()).
			Msg("Installed")

		e.Reporter.Report(types.Action{Kind: types.ActionInstall, Source: m.Source, Target: m.Destination, Mode: mode})
		installed = append(installed, m.Destination)
	}

	return installed, nil
}
