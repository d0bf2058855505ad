package main

import (
	"runtime"
	"runtime/debug"

	"github.com/bnema/dockyard/internal/cli/cmd"
	"github.com/bnema/dockyard/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// A panic inside the alt screen is otherwise lost with the screen.
	debug.SetTraceback("all")

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
