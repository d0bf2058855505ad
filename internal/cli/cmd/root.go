// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dockyard",
		Short: "A docking layout engine for panels, tabs and splits",
		Long: `Dockyard - dock panels into tab groups and resizable splits.

Panels live in tab groups that are arranged in a binary tree of
horizontal and vertical splits. Drag a tab onto one of the five drop
zones of a group to dock it left, right, above, below or into the group
itself. Empty groups disappear on their own and splitters keep every
side above its minimum size.

Features:
  - Drop zone overlay with a live preview of the resulting layout
  - Draggable splitters with min-size clamping
  - Tab strips with close buttons and drag-to-undock
  - Terminal host with full mouse support
  - TOML configuration with hot reload and JSON schema

Use 'dockyard run' to open the interactive terminal host, or
'dockyard demo' to replay a scripted docking session without a terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Interactive: cmd.Name() == runCmd.Name(),
				Console:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
