package config

import (
	"path/filepath"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/tabstrip"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// DockSettings maps the dock and drop zone sections onto area settings.
func (c *Config) DockSettings() dock.Settings {
	return dock.Settings{
		MinPanelSize:      entity.Vec2{X: c.Dock.MinPanelWidth, Y: c.Dock.MinPanelHeight},
		SplitterThickness: c.Dock.SplitterThickness,
		TabBarHeight:      c.Dock.TabBarHeight,
		DefaultDockRatio:  c.Dock.DefaultDockRatio,
		Zones: dock.ZoneSettings{
			EdgeThreshold: c.DropZones.EdgeThreshold,
			ZoneSize:      c.DropZones.ZoneSize,
			ZoneGap:       c.DropZones.ZoneGap,
			PreviewAlpha:  c.DropZones.PreviewAlpha,
			SplitRatio:    c.DropZones.SplitRatio,
		},
	}
}

// TabMetrics maps the tabs section onto strip metrics. Values the config
// does not expose keep their defaults.
func (c *Config) TabMetrics() tabstrip.Metrics {
	m := tabstrip.DefaultMetrics()
	m.MinTabWidth = c.Tabs.MinWidth
	m.MaxTabWidth = c.Tabs.MaxWidth
	m.Padding = c.Tabs.Padding
	m.Spacing = c.Tabs.Spacing
	m.CloseButtonSize = c.Tabs.CloseButtonSize
	m.DragThreshold = c.Tabs.DragThreshold
	return m
}

// Palette returns the active palette with empty tokens filled from defaults.
func (c *Config) Palette() theme.Palette {
	if !c.IsDark() {
		return theme.Merge(c.Appearance.LightPalette.themePalette(), false)
	}
	return theme.Merge(c.Appearance.DarkPalette.themePalette(), true)
}

// IsDark reports whether the dark palette is active. An auto scheme that
// was never resolved is dark.
func (c *Config) IsDark() bool {
	switch c.Appearance.ColorScheme {
	case ColorSchemeLight:
		return false
	case ColorSchemeAuto:
		return c.autoDark == nil || *c.autoDark
	default:
		return true
	}
}

// ResolveColorScheme records the detected terminal preference for the
// auto scheme. It has no effect on dark or light.
func (c *Config) ResolveColorScheme(prefersDark bool) {
	c.autoDark = &prefersDark
}

// Theme returns the renderer colours of the active palette.
func (c *Config) Theme() port.Theme {
	return c.Palette().Theme()
}

// LoggingConfig maps the logging section for a session. File output goes
// to LogDir/session_<id>.log when enabled.
func (c *Config) LoggingConfig(sessionID string) logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	if c.Logging.Format == "json" {
		cfg.Format = "json"
	}

	if c.Logging.EnableFileLog && c.Logging.LogDir != "" && sessionID != "" {
		cfg.File = logging.FileConfig{
			Enabled:    true,
			Path:       filepath.Join(c.Logging.LogDir, logging.SessionFilename(sessionID)),
			MaxSizeMB:  c.Logging.MaxSizeMB,
			MaxBackups: c.Logging.MaxBackups,
			MaxAgeDays: c.Logging.MaxAge,
			Compress:   c.Logging.Compress,
		}
	}
	return cfg
}
