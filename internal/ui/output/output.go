// Package output builds termenv outputs that share one color policy across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for log and command output.
// NO_COLOR forces Ascii. CI gets plain ANSI. Otherwise the terminal is probed.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("CI") != "" {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, or to stderr when w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
