// Package types holds the small set of values shared by every installer
// phase: the filesystem interface, the run mode, the detected platform and
// the mapping records that describe what gets copied and linked where.
//
// Nothing in here touches the filesystem; it only describes work.
package types
