// Package paths resolves the home directory and converts between absolute
// paths and their ~-relative display form.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// GetHomeDirectory returns the user's home directory.
// HOME from the environment wins, then os.UserHomeDir(). If both fail it
// returns an error rather than guessing.
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Clean(home), nil
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Clean(home), nil
	}

	return "", errors.New(errors.ErrInvalidInput,
		"unable to determine home directory: HOME is unset and os.UserHomeDir() failed")
}

// ExpandHome expands a leading ~ or ~/ against home. "~user" forms are
// returned unchanged.
func ExpandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Normalize expands ~, makes the path absolute and cleans it
func Normalize(path, home string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path, home))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// Tildify renders path relative to home as ~/..., leaving other paths alone
func Tildify(path, home string) string {
	if home == "" || path == "" {
		return path
	}
	home = filepath.Clean(home)
	clean := filepath.Clean(path)
	if clean == home {
		return "~"
	}
	rel, err := filepath.Rel(home, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "~" + string(filepath.Separator) + rel
}

// Within reports whether path is home itself or below it
func Within(path, home string) bool {
	rel, err := filepath.Rel(filepath.Clean(home), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
