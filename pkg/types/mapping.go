package types

// ProjectRoot is the validated source repository. It is created once by the
// locator and never modified.
type ProjectRoot struct {
	// Path is absolute and clean
	Path string

	// Name is the project name derived from RemoteURL
	Name string

	// RemoteURL is the raw remote identity string
	RemoteURL string
}

// FileMapping pairs a repository file with its home-directory destination
type FileMapping struct {
	Source      string
	Destination string
}

// SymlinkMapping pairs a link location with the path it should point at
type SymlinkMapping struct {
	Link   string
	Target string
}
