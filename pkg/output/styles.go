package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ShouldColor reports whether w is a terminal and NO_COLOR is unset
func ShouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	simulated lipgloss.Style
	executed  lipgloss.Style
	arrow     lipgloss.Style
	errorTag  lipgloss.Style
	heading   *pterm.Style
	success   *pterm.Style
	color     bool
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return palette{
		simulated: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#E5C07B"}),
		executed:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#98C379"}),
		arrow:     r.NewStyle().Faint(true),
		errorTag:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		heading:   pterm.NewStyle(pterm.FgCyan, pterm.Bold),
		success:   pterm.NewStyle(pterm.FgGreen, pterm.Bold),
		color:     color,
	}
}

func (p palette) headingText(s string) string {
	if !p.color {
		return s
	}
	return p.heading.Sprint(s)
}

func (p palette) successText(s string) string {
	if !p.color {
		return s
	}
	return p.success.Sprint(s)
}
