//go:build linux || darwin

package cmd

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize returns the size of the terminal on f. It fails when f is
// not a terminal, which the dock host cannot draw on.
func terminalSize(f *os.File) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%s is not a terminal: %w", f.Name(), err)
	}
	return int(ws.Col), int(ws.Row), nil
}
