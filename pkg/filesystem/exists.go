package filesystem

import (
	"github.com/arthur-debert/dotinstall/pkg/types"
)

// Exists reports whether anything, including a dangling symlink, is at path
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// IsDir reports whether path resolves to a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
