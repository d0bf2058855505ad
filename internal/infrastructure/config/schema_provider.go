package config

import (
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionDock       = "Dock"
	SectionDropZones  = "Drop Zones"
	SectionTabs       = "Tabs"
	SectionTerminal   = "Terminal"
	SectionLogging    = "Logging"
	SectionAppearance = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKey {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKey, 0, 48)
	keys = append(keys, p.getDockKeys(defaults)...)
	keys = append(keys, p.getDropZoneKeys(defaults)...)
	keys = append(keys, p.getTabsKeys(defaults)...)
	keys = append(keys, p.getTerminalKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

func (*SchemaProvider) getDockKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "dock.splitter_thickness",
			Type:        "float64",
			Default:     formatFloat(defaults.Dock.SplitterThickness),
			Description: "Width of the draggable bar between split children",
			Range:       ">=0",
			Section:     SectionDock,
		},
		{
			Key:         "dock.tab_bar_height",
			Type:        "float64",
			Default:     formatFloat(defaults.Dock.TabBarHeight),
			Description: "Height of the tab strip above each tab group",
			Range:       ">=0",
			Section:     SectionDock,
		},
		{
			Key:         "dock.min_panel_width",
			Type:        "float64",
			Default:     formatFloat(defaults.Dock.MinPanelWidth),
			Description: "Splitter drags never shrink a child below this width",
			Range:       ">=0",
			Section:     SectionDock,
		},
		{
			Key:         "dock.min_panel_height",
			Type:        "float64",
			Default:     formatFloat(defaults.Dock.MinPanelHeight),
			Description: "Splitter drags never shrink a child below this height",
			Range:       ">=0",
			Section:     SectionDock,
		},
		{
			Key:         "dock.default_dock_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.Dock.DefaultDockRatio),
			Description: "Share of a node given to a panel docked at its edge",
			Range:       "0-1 (exclusive)",
			Section:     SectionDock,
		},
	}
}

func (*SchemaProvider) getDropZoneKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "drop_zones.edge_threshold",
			Type:        "float64",
			Default:     formatFloat(defaults.DropZones.EdgeThreshold),
			Description: "Fraction of a node's size near each edge that selects an edge zone",
			Range:       "0-0.5",
			Section:     SectionDropZones,
		},
		{
			Key:         "drop_zones.zone_size",
			Type:        "float64",
			Default:     formatFloat(defaults.DropZones.ZoneSize),
			Description: "Side of the square drop zone buttons",
			Range:       ">0",
			Section:     SectionDropZones,
		},
		{
			Key:         "drop_zones.zone_gap",
			Type:        "float64",
			Default:     formatFloat(defaults.DropZones.ZoneGap),
			Description: "Gap between the centre button and the edge buttons",
			Range:       ">=0",
			Section:     SectionDropZones,
		},
		{
			Key:         "drop_zones.preview_alpha",
			Type:        "float64",
			Default:     formatFloat(defaults.DropZones.PreviewAlpha),
			Description: "Opacity of the drop preview rectangle",
			Range:       "0-1",
			Section:     SectionDropZones,
		},
		{
			Key:         "drop_zones.split_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.DropZones.SplitRatio),
			Description: "Share given to a panel dropped on an edge",
			Range:       "0-1 (exclusive)",
			Section:     SectionDropZones,
		},
	}
}

func (*SchemaProvider) getTabsKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "tabs.min_width",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.MinWidth),
			Description: "Narrowest a tab gets when the strip is crowded",
			Range:       ">0",
			Section:     SectionTabs,
		},
		{
			Key:         "tabs.max_width",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.MaxWidth),
			Description: "Widest a tab gets when the strip has room",
			Range:       ">=tabs.min_width",
			Section:     SectionTabs,
		},
		{
			Key:         "tabs.padding",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.Padding),
			Description: "Inset of the first tab and of each title",
			Range:       ">=0",
			Section:     SectionTabs,
		},
		{
			Key:         "tabs.spacing",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.Spacing),
			Description: "Gap between tabs",
			Range:       ">=0",
			Section:     SectionTabs,
		},
		{
			Key:         "tabs.close_button_size",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.CloseButtonSize),
			Description: "Side of the close button on closable tabs",
			Range:       ">=0",
			Section:     SectionTabs,
		},
		{
			Key:         "tabs.drag_threshold",
			Type:        "float64",
			Default:     formatFloat(defaults.Tabs.DragThreshold),
			Description: "Distance a pressed tab must move before it is dragged",
			Range:       ">=0",
			Section:     SectionTabs,
		},
	}
}

func (*SchemaProvider) getTerminalKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "terminal.cell_width",
			Type:        "float64",
			Default:     formatFloat(defaults.Terminal.CellWidth),
			Description: "Layout units covered by one terminal column",
			Range:       ">0",
			Section:     SectionTerminal,
		},
		{
			Key:         "terminal.cell_height",
			Type:        "float64",
			Default:     formatFloat(defaults.Terminal.CellHeight),
			Description: "Layout units covered by one terminal row",
			Range:       ">0",
			Section:     SectionTerminal,
		},
		{
			Key:         "terminal.all_motion",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Terminal.AllMotion),
			Description: "Track pointer motion without a pressed button for hover feedback",
			Section:     SectionTerminal,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Write a rotated log file per session",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/dockyard/logs",
			Description: "Directory for session log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Size at which a log file is rotated",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated files kept per session",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Maximum age of log files in days",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "appearance.color_scheme",
			Type:        "string",
			Default:     string(defaults.Appearance.ColorScheme),
			Description: "Palette used to paint dock areas",
			Values:      []string{string(ColorSchemeDark), string(ColorSchemeLight), string(ColorSchemeAuto)},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark palette (background, surface, surface_variant, text, muted, accent, accent_hover, border, zone_idle)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light palette (background, surface, surface_variant, text, muted, accent, accent_hover, border, zone_idle)",
			Section:     SectionAppearance,
		},
	}
}
