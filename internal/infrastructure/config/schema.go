// Package config loads, validates and watches the dockyard configuration file.
package config

// Config represents the complete configuration for dockyard.
type Config struct {
	// Dock holds the layout knobs of every dock area.
	Dock DockConfig `mapstructure:"dock" toml:"dock" json:"dock"`
	// DropZones tunes the drop zone detector used while dragging panels.
	DropZones DropZonesConfig `mapstructure:"drop_zones" toml:"drop_zones" json:"drop_zones"`
	// Tabs sizes the tab strips drawn above each tab group.
	Tabs TabsConfig `mapstructure:"tabs" toml:"tabs" json:"tabs"`
	// Terminal controls how the interactive host maps cells to layout units.
	Terminal   TerminalConfig   `mapstructure:"terminal" toml:"terminal" json:"terminal"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`

	// autoDark is the detected preference used by ColorSchemeAuto.
	autoDark *bool
}

// DockConfig holds dock area layout settings. All sizes are layout units.
type DockConfig struct {
	SplitterThickness float64 `mapstructure:"splitter_thickness" toml:"splitter_thickness" json:"splitter_thickness" jsonschema:"minimum=0" jsonschema_description:"Width of the draggable bar between split children"`
	TabBarHeight      float64 `mapstructure:"tab_bar_height" toml:"tab_bar_height" json:"tab_bar_height" jsonschema:"minimum=0" jsonschema_description:"Height of the tab strip above each tab group"`
	MinPanelWidth     float64 `mapstructure:"min_panel_width" toml:"min_panel_width" json:"min_panel_width" jsonschema:"minimum=0" jsonschema_description:"Splitter drags never shrink a child below this width"`
	MinPanelHeight    float64 `mapstructure:"min_panel_height" toml:"min_panel_height" json:"min_panel_height" jsonschema:"minimum=0" jsonschema_description:"Splitter drags never shrink a child below this height"`
	// DefaultDockRatio is the share given to a panel docked at an edge when
	// the caller does not pass a ratio.
	DefaultDockRatio float64 `mapstructure:"default_dock_ratio" toml:"default_dock_ratio" json:"default_dock_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1" jsonschema_description:"Share of a node given to a panel docked at its edge"`
}

// DropZonesConfig tunes drop zone detection and its overlays.
type DropZonesConfig struct {
	EdgeThreshold float64 `mapstructure:"edge_threshold" toml:"edge_threshold" json:"edge_threshold" jsonschema:"minimum=0,maximum=0.5" jsonschema_description:"Fraction of a node's size near each edge that selects an edge zone"`
	ZoneSize      float64 `mapstructure:"zone_size" toml:"zone_size" json:"zone_size" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Side of the square drop zone buttons"`
	ZoneGap       float64 `mapstructure:"zone_gap" toml:"zone_gap" json:"zone_gap" jsonschema:"minimum=0" jsonschema_description:"Gap between the centre button and the edge buttons"`
	PreviewAlpha  float64 `mapstructure:"preview_alpha" toml:"preview_alpha" json:"preview_alpha" jsonschema:"minimum=0,maximum=1" jsonschema_description:"Opacity of the drop preview rectangle"`
	SplitRatio    float64 `mapstructure:"split_ratio" toml:"split_ratio" json:"split_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1" jsonschema_description:"Share given to a panel dropped on an edge"`
}

// TabsConfig sizes tab strips.
type TabsConfig struct {
	MinWidth        float64 `mapstructure:"min_width" toml:"min_width" json:"min_width" jsonschema:"exclusiveMinimum=0"`
	MaxWidth        float64 `mapstructure:"max_width" toml:"max_width" json:"max_width" jsonschema:"exclusiveMinimum=0"`
	Padding         float64 `mapstructure:"padding" toml:"padding" json:"padding" jsonschema:"minimum=0"`
	Spacing         float64 `mapstructure:"spacing" toml:"spacing" json:"spacing" jsonschema:"minimum=0"`
	CloseButtonSize float64 `mapstructure:"close_button_size" toml:"close_button_size" json:"close_button_size" jsonschema:"minimum=0"`
	// DragThreshold is how far a pressed tab must move before it is dragged.
	DragThreshold float64 `mapstructure:"drag_threshold" toml:"drag_threshold" json:"drag_threshold" jsonschema:"minimum=0"`
}

// TerminalConfig controls the interactive terminal host.
type TerminalConfig struct {
	// CellWidth and CellHeight are the layout units covered by one terminal
	// cell, so pixel-sized settings keep their proportions in a terminal.
	CellWidth  float64 `mapstructure:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"exclusiveMinimum=0"`
	CellHeight float64 `mapstructure:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"exclusiveMinimum=0"`
	// AllMotion reports pointer motion without a pressed button so splitters
	// and tabs show hover state. Some terminals do not support it.
	AllMotion bool `mapstructure:"all_motion" toml:"all_motion" json:"all_motion"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog writes a rotated session log under LogDir.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// ColorScheme selects the palette.
type ColorScheme string

const (
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
	// ColorSchemeAuto follows the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
)

// AppearanceConfig holds palette overrides.
type AppearanceConfig struct {
	ColorScheme  ColorScheme  `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=dark,enum=light,enum=auto"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
}

// ColorPalette holds hex colour overrides. Empty values keep the defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background,omitempty"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface,omitempty"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant,omitempty"`
	Text           string `mapstructure:"text" toml:"text" json:"text,omitempty"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted,omitempty"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent,omitempty"`
	AccentHover    string `mapstructure:"accent_hover" toml:"accent_hover" json:"accent_hover,omitempty"`
	Border         string `mapstructure:"border" toml:"border" json:"border,omitempty"`
	ZoneIdle       string `mapstructure:"zone_idle" toml:"zone_idle" json:"zone_idle,omitempty"`
}
