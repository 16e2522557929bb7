// Package backup copies existing destination files into a fresh,
// timestamped directory before anything is removed.
//
// A backup is all-or-nothing per run: the first failure aborts and the
// caller must not proceed to removal. Backup directories are never pruned.
package backup

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/synthfs"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/rs/zerolog"
)

const (
	DefaultPrefix = ".bash_backup_"
	DefaultLayout = "20060102_150405"
)

// Manager performs or simulates one backup
type Manager struct {
	FS       types.FS
	Home     string
	Prefix   string
	Layout   string
	Now      func() time.Time
	Reporter types.Reporter

	logger zerolog.Logger
}

// Result describes the backup. Dir is set even in dry-run, to show where
// the backup would have gone; Created says whether it exists.
type Result struct {
	Dir     string
	Created bool
	Entries []string
}

// NewManager creates a Manager with default naming
func NewManager(fsys types.FS, home string) *Manager {
	return &Manager{
		FS:     fsys,
		Home:   home,
		Prefix: DefaultPrefix,
		Layout: DefaultLayout,
		Now:    time.Now,
	}
}

// DirName returns the backup directory for time t
func (m *Manager) DirName(t time.Time) string {
	return filepath.Join(m.Home, m.Prefix+t.Format(m.Layout))
}

// Run backs up every candidate. With no candidates nothing is created.
func (m *Manager) Run(candidates []string, mode types.RunMode) (*Result, error) {
	m.init()
	done := logging.LogOperationStart(m.logger, "backup")
	defer done()

	result := &Result{Dir: m.DirName(m.Now())}

	if len(candidates) == 0 {
		m.logger.Info().Msg("Nothing to back up")
		return result, nil
	}

	ops := synthfs.NewExecutor(m.FS, mode.IsDryRun())

	// A leftover directory from the same second is never merged into.
	if !mode.IsDryRun() && filesystem.Exists(m.FS, result.Dir) {
		return nil, errors.Newf(errors.ErrBackupDirCreate,
			"backup directory %s already exists", result.Dir).
			WithDetail("path", result.Dir)
	}
	if err := ops.CreateDir(result.Dir, 0700); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupDirCreate,
			"failed to create backup directory %s", result.Dir).
			WithDetail("path", result.Dir)
	}
	if !mode.IsDryRun() {
		result.Created = true
		m.logger.Info().Str("dir", result.Dir).Msg("Created backup directory")
	}

	for _, src := range candidates {
		dst := filepath.Join(result.Dir, m.relative(src))

		if err := ops.Copy(src, dst); err != nil {
			return result, errors.Wrapf(err, errors.ErrBackupCopy, "failed to back up %s", src).
				WithDetail("path", src).
				WithDetail("backupDir", result.Dir)
		}

		m.Reporter.Report(types.Action{Kind: types.ActionBackup, Source: src, Target: dst, Mode: mode})
		result.Entries = append(result.Entries, dst)
	}

	m.logger.Info().
		Str("dir", result.Dir).
		Int("entries", len(result.Entries)).
		Bool("dryRun", mode.IsDryRun()).
		Msg("Backup finished")

	return result, nil
}

// relative keeps the path below home so nested destinations don't collide;
// anything outside home keeps only its base name
func (m *Manager) relative(src string) string {
	if rel, err := filepath.Rel(m.Home, src); err == nil && rel != "." && paths.Within(src, m.Home) {
		return rel
	}
	return filepath.Base(src)
}

func (m *Manager) init() {
	if m.FS == nil {
		m.FS = filesystem.NewOS()
	}
	if m.Prefix == "" {
		m.Prefix = DefaultPrefix
	}
	if m.Layout == "" {
		m.Layout = DefaultLayout
	}
	if m.Now == nil {
		m.Now = time.Now
	}
	if m.Reporter == nil {
		m.Reporter = types.NopReporter{}
	}
	m.logger = logging.GetLogger("backup")
}
