package colorscheme

import (
	"os"
	"strconv"
	"strings"
)

const (
	detectorNameEnv = "COLORFGBG"
	priorityEnv     = 20
)

// EnvDetector reads the COLORFGBG variable set by rxvt, Konsole and
// several other terminals. Its last field is the background colour index.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a detector reading the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("COLORFGBG") != ""
}

// Detect implements port.ColorSchemeDetector.
// Background indexes 0 to 6 and 8 are the dark ANSI colours.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	value := d.getenv("COLORFGBG")
	fields := strings.Split(value, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}
