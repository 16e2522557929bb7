// Package fileset expands the configured file lists into concrete paths.
//
// Resolve is pure: it reads the filesystem but never writes. It produces
// the install mappings, the backup/removal candidates found in the home
// directory and the symlink mappings, failing on the first missing source
// or symlink target so no later phase runs against an incomplete set.
package fileset

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/types"
)

// LinkSpec is an unresolved symlink: Link relative to home, Target relative
// to the project root
type LinkSpec struct {
	Link   string
	Target string
}

// Spec is everything Resolve needs
type Spec struct {
	// Root is the validated project root
	Root string

	// Home is the destination directory
	Home string

	// ConfigDir is the repository subdirectory holding Files
	ConfigDir string

	// Files are the required file names, in install order
	Files []string

	// Sweep patterns match extra home entries to back up and remove
	Sweep []string

	Links []LinkSpec

	FS types.FS
}

// FileSet is the resolved output
type FileSet struct {
	Mappings []types.FileMapping

	// Candidates are existing destination-side paths, deduplicated. Mapping
	// destinations come first in mapping order, then sweep matches sorted.
	Candidates []string

	Symlinks []types.SymlinkMapping
}

// Resolve validates sources and computes the candidate set
func Resolve(spec Spec) (*FileSet, error) {
	logger := logging.GetLogger("fileset")

	if spec.FS == nil {
		spec.FS = filesystem.NewOS()
	}

	mappings, err := resolveMappings(spec)
	if err != nil {
		return nil, err
	}

	candidates, err := resolveCandidates(spec, mappings)
	if err != nil {
		return nil, err
	}

	links, err := resolveLinks(spec)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("mappings", len(mappings)).
		Int("candidates", len(candidates)).
		Int("symlinks", len(links)).
		Msg("File set resolved")

	return &FileSet{Mappings: mappings, Candidates: candidates, Symlinks: links}, nil
}

func resolveMappings(spec Spec) ([]types.FileMapping, error) {
	sourceDir := filepath.Join(spec.Root, spec.ConfigDir)
	seen := make(map[string]string, len(spec.Files))
	mappings := make([]types.FileMapping, 0, len(spec.Files))

	for _, name := range spec.Files {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(spec.Home, name)

		if _, err := spec.FS.Stat(src); err != nil {
			return nil, errors.Wrapf(err, errors.ErrMissingSourceFile, "required source file missing: %s", src).
				WithDetail("file", name).
				WithDetail("path", src)
		}

		if !paths.Within(dst, spec.Home) || dst == filepath.Clean(spec.Home) {
			return nil, errors.Newf(errors.ErrInvalidInput, "destination %s is outside %s", dst, spec.Home)
		}

		if prev, dup := seen[dst]; dup {
			return nil, errors.Newf(errors.ErrDuplicateDestination,
				"%s and %s both install to %s", prev, name, dst).
				WithDetail("destination", dst)
		}
		seen[dst] = name

		mappings = append(mappings, types.FileMapping{Source: src, Destination: dst})
	}

	return mappings, nil
}

func resolveCandidates(spec Spec, mappings []types.FileMapping) ([]string, error) {
	seen := make(map[string]bool)
	var candidates []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			candidates = append(candidates, path)
		}
	}

	for _, m := range mappings {
		if filesystem.Exists(spec.FS, m.Destination) {
			add(m.Destination)
		}
	}

	if len(spec.Sweep) == 0 {
		return candidates, nil
	}

	entries, err := spec.FS.ReadDir(spec.Home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPath, "cannot read home directory %s", spec.Home)
	}

	var swept []string
	for _, entry := range entries {
		if Matches(entry.Name(), spec.Sweep) {
			swept = append(swept, filepath.Join(spec.Home, entry.Name()))
		}
	}
	sort.Strings(swept)
	for _, path := range swept {
		add(path)
	}

	return candidates, nil
}

// Matches reports whether name matches any of patterns. Bad patterns are
// rejected by config validation and never match here.
func Matches(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func resolveLinks(spec Spec) ([]types.SymlinkMapping, error) {
	links := make([]types.SymlinkMapping, 0, len(spec.Links))
	seen := make(map[string]bool, len(spec.Links))

	for _, l := range spec.Links {
		link := filepath.Join(spec.Home, l.Link)
		target := filepath.Join(spec.Root, l.Target)

		if !filesystem.Exists(spec.FS, target) {
			return nil, errors.Newf(errors.ErrMissingSymlinkTarget, "symlink target missing: %s", target).
				WithDetail("target", target).
				WithDetail("link", link)
		}
		if seen[link] {
			return nil, errors.Newf(errors.ErrDuplicateDestination, "symlink %s configured twice", link).
				WithDetail("destination", link)
		}
		seen[link] = true

		links = append(links, types.SymlinkMapping{Link: link, Target: target})
	}

	return links, nil
}
