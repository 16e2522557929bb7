package types

// RunMode says whether mutating phases touch the filesystem
type RunMode string

const (
	// RunModeLive performs every filesystem mutation
	RunModeLive RunMode = "live"

	// RunModeDryRun only reports what would happen
	RunModeDryRun RunMode = "dry-run"
)

// RunModeFor maps the -n flag to a RunMode
func RunModeFor(dryRun bool) RunMode {
	if dryRun {
		return RunModeDryRun
	}
	return RunModeLive
}

// IsDryRun reports whether the mode forbids mutation
func (m RunMode) IsDryRun() bool {
	return m == RunModeDryRun
}
