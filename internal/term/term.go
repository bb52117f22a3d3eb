// Package term provides color palettes and terminal detection.
//
// A [Palette] is resolved once per output stream: logs go to stderr and
// previews to stdout, and either may be a pipe while the other is a TTY.
// When colors are disabled every style renders its input unchanged, so
// callers never branch on color state.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/pathprune/internal/config"
)

// Palette holds the styles used for log levels and previews.
type Palette struct {
	Red     lipgloss.Style
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Blue    lipgloss.Style
	Cyan    lipgloss.Style
	Magenta lipgloss.Style
	Faint   lipgloss.Style
}

// NewPalette resolves mode against f and builds the styles.
func NewPalette(mode config.ColorMode, f *os.File) Palette {
	enabled := resolve(mode, f)

	r := lipgloss.NewRenderer(os.Stderr)
	if f != nil {
		r = lipgloss.NewRenderer(f)
	}
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	bold := func(c string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}
	return Palette{
		Red:     bold("9"),
		Green:   bold("10"),
		Yellow:  bold("11"),
		Blue:    bold("12"),
		Cyan:    bold("14"),
		Magenta: bold("13"),
		Faint:   r.NewStyle().Faint(true),
	}
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
