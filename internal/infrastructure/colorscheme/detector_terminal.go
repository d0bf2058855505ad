package colorscheme

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 10
)

// TerminalDetector asks the terminal for its background colour. It must
// run before a program takes over the input, since the reply arrives on
// stdin.
type TerminalDetector struct {
	out *os.File
}

// NewTerminalDetector creates a detector querying stdout.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{out: os.Stdout}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.out != nil && isatty.IsTerminal(d.out.Fd())
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	return termenv.NewOutput(d.out).HasDarkBackground(), true
}
