package config

import "github.com/bnema/dockyard/internal/ui/theme"

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Default configuration constants
const (
	// Dock defaults
	defaultSplitterThickness = 4.0
	defaultTabBarHeight      = 24.0
	defaultMinPanelSize      = 100.0
	defaultDockRatio         = 0.3

	// Drop zone defaults
	defaultEdgeThreshold = 0.3
	defaultZoneSize      = 32.0
	defaultZoneGap       = 4.0
	defaultPreviewAlpha  = 0.3
	defaultDropRatio     = 0.3

	// Tab strip defaults
	defaultTabMinWidth        = 60.0
	defaultTabMaxWidth        = 200.0
	defaultTabPadding         = 8.0
	defaultTabSpacing         = 1.0
	defaultTabCloseButtonSize = 14.0
	defaultTabDragThreshold   = 5.0

	// Terminal defaults: a typical 8x16 monospace cell
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	logDir, err := GetLogDir()
	if err != nil {
		logDir = ""
	}

	return &Config{
		Dock: DockConfig{
			SplitterThickness: defaultSplitterThickness,
			TabBarHeight:      defaultTabBarHeight,
			MinPanelWidth:     defaultMinPanelSize,
			MinPanelHeight:    defaultMinPanelSize,
			DefaultDockRatio:  defaultDockRatio,
		},
		DropZones: DropZonesConfig{
			EdgeThreshold: defaultEdgeThreshold,
			ZoneSize:      defaultZoneSize,
			ZoneGap:       defaultZoneGap,
			PreviewAlpha:  defaultPreviewAlpha,
			SplitRatio:    defaultDropRatio,
		},
		Tabs: TabsConfig{
			MinWidth:        defaultTabMinWidth,
			MaxWidth:        defaultTabMaxWidth,
			Padding:         defaultTabPadding,
			Spacing:         defaultTabSpacing,
			CloseButtonSize: defaultTabCloseButtonSize,
			DragThreshold:   defaultTabDragThreshold,
		},
		Terminal: TerminalConfig{
			CellWidth:  defaultCellWidth,
			CellHeight: defaultCellHeight,
			AllMotion:  true,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        logDir,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      false,
		},
		Appearance: AppearanceConfig{
			ColorScheme:  ColorSchemeDark,
			DarkPalette:  paletteFromTheme(theme.DefaultDarkPalette()),
			LightPalette: paletteFromTheme(theme.DefaultLightPalette()),
		},
	}
}

func paletteFromTheme(p theme.Palette) ColorPalette {
	return ColorPalette{
		Background:     p.Background,
		Surface:        p.Surface,
		SurfaceVariant: p.SurfaceVariant,
		Text:           p.Text,
		Muted:          p.Muted,
		Accent:         p.Accent,
		AccentHover:    p.AccentHover,
		Border:         p.Border,
		ZoneIdle:       p.ZoneIdle,
	}
}
