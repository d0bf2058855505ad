// Package cli wires configuration, logging and styling for the dockyard
// commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/colorscheme"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/xdg"
	"github.com/bnema/dockyard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	Paths     port.XDGPaths
	BuildInfo build.Info
	SessionID string

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
	scheme    *port.ColorSchemePreference
}

// Options tune NewApp.
type Options struct {
	// Interactive hosts own the terminal, so console logging is discarded
	// and only the session file (when enabled) receives records.
	Interactive bool
	// Console receives log records for non-interactive commands.
	// Defaults to stderr.
	Console io.Writer
}

// NewApp loads the configuration and builds the session logger. A broken
// config file does not stop the CLI: defaults are used and the error is
// logged.
func NewApp(opts Options) (*App, error) {
	if err := config.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create state directories: %w", err)
	}
	mgr, cfg, loadErr := loadConfig()

	sessionID := logging.GenerateSessionID()
	logCfg := cfg.LoggingConfig(sessionID)
	logCfg.Console = opts.Console
	if opts.Interactive {
		logCfg.Console = io.Discard
	}

	logger, closer := logging.New(logCfg)
	ctx := logging.WithSessionID(logging.WithContext(context.Background(), logger), sessionID)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	var scheme *port.ColorSchemePreference
	if cfg.Appearance.ColorScheme == config.ColorSchemeAuto {
		pref := colorscheme.NewTerminalResolver().Resolve()
		scheme = &pref
		cfg.ResolveColorScheme(pref.PrefersDark)
		logger.Debug().Str("source", pref.Source).Bool("dark", pref.PrefersDark).Msg("color scheme detected")
	}
	logger.Debug().
		Str("config_file", configFile(mgr)).
		Str("color_scheme", string(cfg.Appearance.ColorScheme)).
		Msg("cli initialized")

	return &App{
		Config:    cfg,
		ConfigMgr: mgr,
		Theme:     styles.NewTheme(cfg),
		Paths:     xdg.New(),
		SessionID: sessionID,
		ctx:       ctx,
		logCloser: closer,
		scheme:    scheme,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// ApplyColorScheme carries the preference detected at startup over to a
// reloaded configuration. The terminal is not queried again because a
// running program owns its input.
func (a *App) ApplyColorScheme(cfg *config.Config) {
	if a.scheme != nil && cfg != nil {
		cfg.ResolveColorScheme(a.scheme.PrefersDark)
	}
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the session logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// loadConfig loads configuration from standard locations. The manager is
// nil when the config location cannot be resolved.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}

func configFile(mgr *config.Manager) string {
	if mgr == nil {
		return ""
	}
	return mgr.ConfigFile()
}
