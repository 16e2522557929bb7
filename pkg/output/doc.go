// Package output renders installer actions for humans.
//
// TextReporter prints one line per action, with paths rendered relative to
// the home directory. Simulated actions read "would copy", executed ones
// "copied", so a dry-run transcript is easy to tell apart from a real run.
// Colour comes from lipgloss and pterm and is switched off when the writer
// is not a terminal.
package output
