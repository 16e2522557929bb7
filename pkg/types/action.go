package types

// ActionKind identifies one reportable step
type ActionKind string

const (
	ActionBackup  ActionKind = "backup"
	ActionRemove  ActionKind = "remove"
	ActionInstall ActionKind = "install"
	ActionMkdir   ActionKind = "mkdir"
	ActionSymlink ActionKind = "symlink"
)

// Action is a single filesystem step, executed or simulated.
// Source is empty for steps that only have a target (remove, mkdir).
type Action struct {
	Kind   ActionKind
	Source string
	Target string
	Mode   RunMode
}

// Reporter receives every action as it happens
type Reporter interface {
	Phase(name string)
	Report(action Action)
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) Phase(string)  {}
func (NopReporter) Report(Action) {}
