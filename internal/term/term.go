// Package term resolves the configured color mode against the terminal.
//
// The result is computed once during startup (from [logging.NewLogger]) and
// read by display code that renders outside the logger, such as the banner
// and the summary table.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Jstafford98/figmover/internal/config"
)

var enabled bool

// Configure resolves the color mode and records whether colors are on.
// It returns the resolved value for callers that style their own output.
func Configure(mode config.ColorMode) bool {
	enabled = Resolve(mode, os.Stdout)
	return enabled
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// Resolve determines whether colors should be enabled for f based on the
// configured mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func Resolve(mode config.ColorMode, f *os.File) bool {
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

// IsTerminal reports whether f is attached to a TTY, including Cygwin/MSYS
// pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
