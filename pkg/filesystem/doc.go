// Package filesystem provides implementations of types.FS.
//
// NewOS talks to the real filesystem. NewAferoFS adapts any afero.Fs, which
// lets tests run phases against in-memory or read-only filesystems. Both
// satisfy synthfs' FullFileSystem, so pipelines run against them directly.
package filesystem
