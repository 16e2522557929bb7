package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/types"
	"github.com/rs/zerolog"
)

// ErrorPrefix starts every error line so failures are greppable
const ErrorPrefix = "ERROR:"

type verbs struct {
	simulated string
	executed  string
}

var verbTable = map[types.ActionKind]verbs{
	types.ActionBackup:  {"would back up", "backed up"},
	types.ActionRemove:  {"would remove", "removed"},
	types.ActionInstall: {"would copy", "copied"},
	types.ActionMkdir:   {"would create", "created"},
	types.ActionSymlink: {"would link", "linked"},
}

// verbWidth pads the verb column; alignment is cosmetic only
const verbWidth = len("would back up")

// TextReporter writes actions as text lines
type TextReporter struct {
	w       io.Writer
	home    string
	palette palette
}

// NewTextReporter creates a reporter writing to w. Paths under home are
// shown as ~/...
func NewTextReporter(w io.Writer, home string, color bool) *TextReporter {
	return &TextReporter{w: w, home: home, palette: newPalette(w, color)}
}

// Phase prints a heading for the next phase
func (r *TextReporter) Phase(name string) {
	fmt.Fprintln(r.w, r.palette.headingText("==> "+name))
}

// Report prints one action
func (r *TextReporter) Report(a types.Action) {
	fmt.Fprintln(r.w, r.Format(a))
}

// Format renders a without a trailing newline
func (r *TextReporter) Format(a types.Action) string {
	v, ok := verbTable[a.Kind]
	if !ok {
		v = verbs{simulated: "would " + string(a.Kind), executed: string(a.Kind)}
	}

	verb := v.executed
	style := r.palette.executed
	if a.Mode.IsDryRun() {
		verb = v.simulated
		style = r.palette.simulated
	}
	verb = style.Render(fmt.Sprintf("%-*s", verbWidth, verb))

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(verb)
	b.WriteString(" ")

	switch {
	case a.Kind == types.ActionSymlink:
		b.WriteString(r.path(a.Target))
		b.WriteString(r.palette.arrow.Render(" -> "))
		b.WriteString(r.path(a.Source))
	case a.Source != "":
		b.WriteString(r.path(a.Source))
		b.WriteString(r.palette.arrow.Render(" -> "))
		b.WriteString(r.path(a.Target))
	default:
		b.WriteString(r.path(a.Target))
	}

	return b.String()
}

// Done prints a closing success line
func (r *TextReporter) Done(msg string) {
	fmt.Fprintln(r.w, r.palette.successText(msg))
}

func (r *TextReporter) path(p string) string {
	return paths.Tildify(p, r.home)
}

// FormatError renders err as a single ERROR: line
func FormatError(w io.Writer, err error, color bool) string {
	p := newPalette(w, color)
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	return p.errorTag.Render(ErrorPrefix) + " " + msg
}

// Recorder keeps actions in memory, for tests and summaries
type Recorder struct {
	Phases  []string
	Actions []types.Action
}

// Phase implements types.Reporter
func (r *Recorder) Phase(name string) {
	r.Phases = append(r.Phases, name)
}

// Report implements types.Reporter
func (r *Recorder) Report(a types.Action) {
	r.Actions = append(r.Actions, a)
}

// Of returns the recorded actions of kind
func (r *Recorder) Of(kind types.ActionKind) []types.Action {
	var out []types.Action
	for _, a := range r.Actions {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Tee fans every call out to several reporters
type Tee []types.Reporter

// Phase implements types.Reporter
func (t Tee) Phase(name string) {
	for _, r := range t {
		r.Phase(name)
	}
}

// Report implements types.Reporter
func (t Tee) Report(a types.Action) {
	for _, r := range t {
		r.Report(a)
	}
}

// LogReporter writes every action to a zerolog logger, so live runs leave
// an audit trail in the log file
type LogReporter struct {
	Logger zerolog.Logger
}

// Phase implements types.Reporter
func (l LogReporter) Phase(name string) {
	l.Logger.Info().Str("phase", name).Msg("Phase started")
}

// Report implements types.Reporter
func (l LogReporter) Report(a types.Action) {
	l.Logger.Info().
		Str("kind", string(a.Kind)).
		Str("source", a.Source).
		Str("target", a.Target).
		Bool("dryRun", a.Mode.IsDryRun()).
		Msg("Action")
}
