// Package locator finds and validates the source repository root.
//
// The root is either given explicitly or found by walking upward from a
// list of start directories looking for a .git entry. Either way it must
// carry a remote whose URL names the expected project. Nothing here writes
// to the filesystem.
package locator
