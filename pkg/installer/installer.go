// Package installer runs the five install phases in order: locate the
// project, resolve the file set, back up, remove and install, then link.
//
// Phases one and two only read. Any error stops the run before the next
// phase starts, so a bad configuration never touches the home directory.
package installer

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotinstall/pkg/backup"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/executor"
	"github.com/arthur-debert/dotinstall/pkg/fileset"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/locator"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/symlinks"
	"github.com/arthur-debert/dotinstall/pkg/types"
)

// Phase names, reported in this order
const (
	PhaseLocate  = "locate project"
	PhaseResolve = "resolve files"
	PhaseBackup  = "back up"
	PhaseRemove  = "remove"
	PhaseInstall = "install"
	PhaseLink    = "link"
)

// Options configures a run
type Options struct {
	// ExplicitPath is the -p value; empty means auto-detect
	ExplicitPath string

	// StartDirs override the auto-detect start directories
	StartDirs []string

	// Home defaults to paths.GetHomeDirectory()
	Home string

	// Config defaults to config.Default()
	Config *config.Config

	Platform types.Platform
	Mode     types.RunMode

	FS       types.FS
	Remote   locator.RemoteReader
	Reporter types.Reporter

	// Now stamps the backup directory
	Now func() time.Time

	// Validated runs once locate and resolve have succeeded, before the
	// first phase that may write
	Validated func(root *types.ProjectRoot)
}

// Summary describes what a run did, or would have done in dry-run
type Summary struct {
	Root     *types.ProjectRoot
	Platform types.Platform
	Mode     types.RunMode

	// BackupDir is empty when there was nothing to back up
	BackupDir string

	Backed    []string
	Removed   []string
	Installed []string
	Linked    []string
}

// Run executes every phase and stops at the first error
func Run(opts Options) (*Summary, error) {
	logger := logging.GetLogger("installer")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	if err := opts.defaults(); err != nil {
		return nil, err
	}
	cfg := opts.Config
	rep := opts.Reporter

	logger.Info().
		Str("home", opts.Home).
		Str("platform", opts.Platform.String()).
		Bool("dryRun", opts.Mode.IsDryRun()).
		Msg("Starting install")

	summary := &Summary{Platform: opts.Platform, Mode: opts.Mode}

	rep.Phase(PhaseLocate)
	root, err := locator.Locate(locator.Options{
		ExplicitPath: opts.ExplicitPath,
		StartDirs:    opts.StartDirs,
		ExpectedName: cfg.Project.Name,
		MaxDepth:     cfg.Search.Depth,
		Home:         opts.Home,
		FS:           opts.FS,
		Remote:       opts.Remote,
	})
	if err != nil {
		return nil, err
	}
	summary.Root = root

	rep.Phase(PhaseResolve)
	set, err := fileset.Resolve(fileset.Spec{
		Root:      root.Path,
		Home:      opts.Home,
		ConfigDir: cfg.Layout.Config,
		Files:     cfg.Manifest(opts.Platform),
		Sweep:     cfg.Files.Sweep,
		Links:     linkSpecs(cfg),
		FS:        opts.FS,
	})
	if err != nil {
		return summary, err
	}
	logger.Debug().
		Int("mappings", len(set.Mappings)).
		Int("candidates", len(set.Candidates)).
		Int("symlinks", len(set.Symlinks)).
		Msg("Resolved file set")

	if opts.Validated != nil {
		opts.Validated(root)
	}

	rep.Phase(PhaseBackup)
	bm := &backup.Manager{
		FS:       opts.FS,
		Home:     opts.Home,
		Prefix:   cfg.Backup.Prefix,
		Layout:   cfg.Backup.Layout,
		Now:      opts.Now,
		Reporter: rep,
	}
	backed, err := bm.Run(set.Candidates, opts.Mode)
	if err != nil {
		return summary, err
	}
	if len(backed.Entries) > 0 {
		summary.BackupDir = backed.Dir
		summary.Backed = backed.Entries
	}

	ex := executor.New(opts.FS, rep)

	rep.Phase(PhaseRemove)
	if summary.Removed, err = ex.Remove(set.Candidates, opts.Mode); err != nil {
		return summary, err
	}

	rep.Phase(PhaseInstall)
	if summary.Installed, err = ex.Install(set.Mappings, opts.Mode); err != nil {
		return summary, err
	}

	rep.Phase(PhaseLink)
	if summary.Linked, err = symlinks.New(opts.FS, rep).Ensure(set.Symlinks, opts.Mode); err != nil {
		return summary, err
	}

	logger.Info().
		Str("root", root.Path).
		Int("installed", len(summary.Installed)).
		Int("linked", len(summary.Linked)).
		Msg("Install finished")

	return summary, nil
}

func (o *Options) defaults() error {
	if o.Home == "" {
		home, err := paths.GetHomeDirectory()
		if err != nil {
			return err
		}
		o.Home = home
	}
	o.Home = filepath.Clean(o.Home)

	if o.Config == nil {
		cfg, err := config.Default()
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Remote == nil {
		o.Remote = locator.GitRemote{Name: o.Config.Project.Remote}
	}
	if o.Reporter == nil {
		o.Reporter = types.NopReporter{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if len(o.StartDirs) == 0 && o.ExplicitPath == "" {
		o.StartDirs = locator.DefaultStartDirs()
	}
	return nil
}

func linkSpecs(cfg *config.Config) []fileset.LinkSpec {
	links := cfg.Links()
	specs := make([]fileset.LinkSpec, 0, len(links))
	for _, s := range links {
		specs = append(specs, fileset.LinkSpec{Link: s.Link, Target: s.Target})
	}
	return specs
}
