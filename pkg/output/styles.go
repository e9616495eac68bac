package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette
var (
	headingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	enabledColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FFAF00"}
)

// Base styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	enabledStyle = lipgloss.NewStyle().
			Foreground(enabledColor).
			Bold(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	warnStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Italic(true)
)

// colorEnabled reports whether styled output should be emitted: stdout
// must be a terminal and NO_COLOR must be unset.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// style applies s only when color output is appropriate.
func style(st lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return st.Render(s)
}
