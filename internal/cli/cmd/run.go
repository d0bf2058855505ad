package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	runPanels  []string
	runNoWatch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive dock host",
	Long: `Open a dock area in the terminal.

Drag tabs with the mouse onto the drop zones to dock them, drag the
splitters to resize, and click the close glyph to close a tab. The
keyboard can add panels and dock them next to the focused group.

The config file is watched while the host runs; saved changes to the
palette, tab metrics or drop zones are applied immediately.

Examples:
  dockyard run                           # Start with three sample panels
  dockyard run -p Files -p Editor        # Start with custom panels
  dockyard run --no-watch                # Ignore config file changes`,
	RunE: runDockHost,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringSliceVarP(&runPanels, "panel", "p", []string{"Files", "Editor", "Console"},
		"panel titles docked on start")
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runDockHost(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cols, rows, err := terminalSize(os.Stdout)
	if err != nil {
		return fmt.Errorf("run needs an interactive terminal: %w", err)
	}

	trace := logging.NewStartupTrace(app.Logger().GetLevel())
	trace.SetLogger(app.Logger())

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGTERM)
	defer stop()

	m := model.NewDockModel(ctx, app.Theme, model.DockModelConfig{
		Config: app.Config,
		Panels: runPanels,
		Trace:  trace,
	})
	if cols > 0 && rows > 0 {
		m.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stdout),
	}
	if app.Config.Terminal.AllMotion {
		opts = append(opts, tea.WithMouseAllMotion())
	} else {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	trace.Mark("program")

	if !runNoWatch {
		watchConfig(ctx, app.ConfigMgr, p, app.ApplyColorScheme)
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dock host failed: %w", err)
	}
	return nil
}

// watchConfig forwards reloaded configurations to the program after
// prepare has adjusted them.
func watchConfig(ctx context.Context, mgr *config.Manager, p *tea.Program, prepare func(*config.Config)) {
	log := logging.FromContext(ctx)
	if mgr == nil {
		log.Debug().Msg("no config manager, hot reload disabled")
		return
	}

	mgr.OnConfigChange(func(cfg *config.Config) {
		prepare(cfg)
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err := mgr.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch failed, hot reload disabled")
	}
}
