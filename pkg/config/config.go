package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/types"
)

// Config is the fully merged configuration
type Config struct {
	Project  ProjectConfig   `koanf:"project" toml:"project" yaml:"project"`
	Layout   LayoutConfig    `koanf:"layout" toml:"layout" yaml:"layout"`
	Search   SearchConfig    `koanf:"search" toml:"search" yaml:"search"`
	Files    FilesConfig     `koanf:"files" toml:"files" yaml:"files"`
	Backup   BackupConfig    `koanf:"backup" toml:"backup" yaml:"backup"`
	Symlinks []SymlinkConfig `koanf:"symlinks" toml:"symlinks" yaml:"symlinks"`
}

// ProjectConfig identifies the repository the installer accepts
type ProjectConfig struct {
	Name   string `koanf:"name" toml:"name" yaml:"name"`
	Remote string `koanf:"remote" toml:"remote" yaml:"remote"`
}

// LayoutConfig names repository subdirectories
type LayoutConfig struct {
	Config  string `koanf:"config" toml:"config" yaml:"config"`
	Scripts string `koanf:"scripts" toml:"scripts" yaml:"scripts"`
}

// SearchConfig bounds the upward root search
type SearchConfig struct {
	Depth int `koanf:"depth" toml:"depth" yaml:"depth"`
}

// FilesConfig lists the configuration files to install
type FilesConfig struct {
	Common   []string            `koanf:"common" toml:"common" yaml:"common"`
	Platform map[string][]string `koanf:"platform" toml:"platform" yaml:"platform"`
	Sweep    []string            `koanf:"sweep" toml:"sweep" yaml:"sweep"`
}

// BackupConfig names the per-run backup directory
type BackupConfig struct {
	Prefix string `koanf:"prefix" toml:"prefix" yaml:"prefix"`
	Layout string `koanf:"layout" toml:"layout" yaml:"layout"`
}

// SymlinkConfig is one link, relative to $HOME, and its target, relative to
// the repository root. An empty target means layout.scripts.
type SymlinkConfig struct {
	Link   string `koanf:"link" toml:"link" yaml:"link"`
	Target string `koanf:"target" toml:"target" yaml:"target"`
}

// Manifest returns the required file names for platform: the common list
// followed by the platform's own entries
func (c *Config) Manifest(platform types.Platform) []string {
	names := make([]string, 0, len(c.Files.Common)+len(c.Files.Platform[platform.String()]))
	names = append(names, c.Files.Common...)
	names = append(names, c.Files.Platform[platform.String()]...)
	return names
}

// Links returns the symlink entries with empty targets set to layout.scripts
func (c *Config) Links() []SymlinkConfig {
	links := make([]SymlinkConfig, len(c.Symlinks))
	for i, link := range c.Symlinks {
		if link.Target == "" {
			link.Target = c.Layout.Scripts
		}
		links[i] = link
	}
	return links
}

// Validate checks constraints koanf cannot express
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return errors.New(errors.ErrConfigInvalid, "project.name must not be empty")
	}
	if strings.TrimSpace(c.Project.Remote) == "" {
		return errors.New(errors.ErrConfigInvalid, "project.remote must not be empty")
	}
	if c.Search.Depth < 1 {
		return errors.Newf(errors.ErrConfigInvalid, "search.depth must be at least 1, got %d", c.Search.Depth)
	}
	if c.Layout.Config == "" || c.Layout.Scripts == "" {
		return errors.New(errors.ErrConfigInvalid, "layout.config and layout.scripts must not be empty")
	}
	if c.Backup.Prefix == "" || c.Backup.Layout == "" {
		return errors.New(errors.ErrConfigInvalid, "backup.prefix and backup.layout must not be empty")
	}

	all := append([]string{}, c.Files.Common...)
	for _, names := range c.Files.Platform {
		all = append(all, names...)
	}
	for _, name := range all {
		if err := checkRelative("files", name); err != nil {
			return err
		}
	}

	for _, pattern := range c.Files.Sweep {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigInvalid, "bad sweep pattern %q", pattern)
		}
	}

	for _, link := range c.Links() {
		if err := checkRelative("symlinks.link", link.Link); err != nil {
			return err
		}
		if err := checkRelative("symlinks.target", link.Target); err != nil {
			return err
		}
	}

	return nil
}

func checkRelative(key, name string) error {
	if name == "" {
		return errors.Newf(errors.ErrConfigInvalid, "%s entries must not be empty", key)
	}
	if filepath.IsAbs(name) {
		return errors.Newf(errors.ErrConfigInvalid, "%s entry %q must be relative", key, name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrConfigInvalid, "%s entry %q escapes its base directory", key, name)
	}
	return nil
}
