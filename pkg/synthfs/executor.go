// Package synthfs runs the installer's filesystem changes as synthfs
// operation pipelines.
//
// Callers describe a change (copy, remove, mkdir, link) and the Executor
// turns it into synthfs operations. Live runs execute them through a
// synthfs pipeline against the configured types.FS; dry runs plan the same
// operations and log them without touching anything.
package synthfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// types.FS is handed to synthfs as-is, absolute paths included.
var _ filesystem.FullFileSystem = types.FS(nil)

// Executor plans and runs filesystem operations
type Executor struct {
	fs     types.FS
	dryRun bool
	sfs    *synthfs.SynthFS
	runner *synthfs.Executor
	logger zerolog.Logger
}

// NewExecutor creates an Executor over fsys
func NewExecutor(fsys types.FS, dryRun bool) *Executor {
	return &Executor{
		fs:     fsys,
		dryRun: dryRun,
		sfs:    synthfs.New(),
		runner: synthfs.NewExecutor(),
		logger: logging.GetLogger("synthfs"),
	}
}

// DryRun reports whether operations are only logged
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Copy copies src to dst. Directories become one operation per entry,
// symlinks are recreated with the same target and regular files keep their
// permission bits. The parent of dst is created if missing.
func (e *Executor) Copy(src, dst string) error {
	ops, err := e.PlanCopy(src, dst)
	if err != nil {
		return err
	}
	return e.Execute(ops...)
}

// Remove deletes whatever is at path, recursively for directories.
// A missing path is not an error.
func (e *Executor) Remove(path string) error {
	ops, err := e.PlanRemove(path)
	if err != nil {
		return err
	}
	return e.Execute(ops...)
}

// CreateDir creates path and any missing parents
func (e *Executor) CreateDir(path string, perm fs.FileMode) error {
	return e.Execute(e.sfs.CreateDir(path, perm))
}

// Symlink creates link pointing at target. The link's parent is created
// if missing; anything already at link makes the operation fail.
func (e *Executor) Symlink(target, link string) error {
	return e.Execute(e.sfs.CreateSymlink(target, link))
}

// PlanCopy returns the operations that copy src to dst, parents first
func (e *Executor) PlanCopy(src, dst string) ([]synthfs.Operation, error) {
	info, err := e.fs.Lstat(src)
	if err != nil {
		return nil, err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := e.fs.Readlink(src)
		if err != nil {
			return nil, err
		}
		return []synthfs.Operation{e.sfs.CreateSymlink(target, dst)}, nil

	case info.IsDir():
		ops := []synthfs.Operation{e.sfs.CreateDir(dst, info.Mode().Perm()|0700)}
		entries, err := e.fs.ReadDir(src)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			child, err := e.PlanCopy(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()))
			if err != nil {
				return nil, err
			}
			ops = append(ops, child...)
		}
		return ops, nil

	default:
		op := e.sfs.Copy(src, dst)
		op.SetDescriptionDetail("destination", dst)
		return []synthfs.Operation{op}, nil
	}
}

// PlanRemove returns the operation that deletes path, or none when
// nothing is there
func (e *Executor) PlanRemove(path string) ([]synthfs.Operation, error) {
	info, err := e.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if info.IsDir() {
		return []synthfs.Operation{e.sfs.Delete(path)}, nil
	}

	// synthfs' delete stats through links and swallows unlink errors, so
	// files and links are unlinked directly.
	op := e.sfs.CustomOperationWithID("unlink-"+path, func(_ context.Context, fsys filesystem.FileSystem) error {
		return fsys.Remove(path)
	})
	op.SetDescriptionDetail("path", path)
	return []synthfs.Operation{op}, nil
}

// Execute runs ops in order as a single pipeline. The first failure stops
// the pipeline and is returned.
func (e *Executor) Execute(ops ...synthfs.Operation) error {
	if len(ops) == 0 {
		return nil
	}

	if e.dryRun {
		for _, op := range ops {
			e.logOperation(op)
		}
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(ops...); err != nil {
		return err
	}

	result := e.runner.Run(context.Background(), pipeline, e.fs)
	if err := result.GetError(); err != nil {
		e.logger.Debug().Err(err).Int("operationCount", len(ops)).Msg("Pipeline execution failed")
		return err
	}

	e.logger.Debug().Int("operationCount", len(ops)).Msg("Pipeline executed")
	return nil
}

func (e *Executor) logOperation(op synthfs.Operation) {
	desc := op.Describe()
	event := e.logger.Info().Str("type", desc.Type).Str("path", desc.Path)
	for key, value := range desc.Details {
		event = event.Interface(key, value)
	}
	event.Msg("Would run operation")
}
