package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/ui/theme"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDock(config)...)
	validationErrors = append(validationErrors, validateDropZones(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg without loading it.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateDock(config *Config) []string {
	var validationErrors []string
	d := config.Dock
	if d.SplitterThickness < 0 {
		validationErrors = append(validationErrors, "dock.splitter_thickness must be non-negative")
	}
	if d.TabBarHeight < 0 {
		validationErrors = append(validationErrors, "dock.tab_bar_height must be non-negative")
	}
	if d.MinPanelWidth < 0 {
		validationErrors = append(validationErrors, "dock.min_panel_width must be non-negative")
	}
	if d.MinPanelHeight < 0 {
		validationErrors = append(validationErrors, "dock.min_panel_height must be non-negative")
	}
	if d.DefaultDockRatio <= 0 || d.DefaultDockRatio >= 1 {
		validationErrors = append(validationErrors, "dock.default_dock_ratio must be between 0 and 1 (exclusive)")
	}
	return validationErrors
}

func validateDropZones(config *Config) []string {
	var validationErrors []string
	z := config.DropZones
	if z.EdgeThreshold < 0 || z.EdgeThreshold > 0.5 {
		validationErrors = append(validationErrors, "drop_zones.edge_threshold must be between 0 and 0.5")
	}
	if z.ZoneSize <= 0 {
		validationErrors = append(validationErrors, "drop_zones.zone_size must be positive")
	}
	if z.ZoneGap < 0 {
		validationErrors = append(validationErrors, "drop_zones.zone_gap must be non-negative")
	}
	if z.PreviewAlpha < 0 || z.PreviewAlpha > 1 {
		validationErrors = append(validationErrors, "drop_zones.preview_alpha must be between 0 and 1")
	}
	if z.SplitRatio <= 0 || z.SplitRatio >= 1 {
		validationErrors = append(validationErrors, "drop_zones.split_ratio must be between 0 and 1 (exclusive)")
	}
	return validationErrors
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	t := config.Tabs
	if t.MinWidth <= 0 {
		validationErrors = append(validationErrors, "tabs.min_width must be positive")
	}
	if t.MaxWidth < t.MinWidth {
		validationErrors = append(validationErrors, "tabs.max_width must be greater than or equal to tabs.min_width")
	}
	if t.Padding < 0 {
		validationErrors = append(validationErrors, "tabs.padding must be non-negative")
	}
	if t.Spacing < 0 {
		validationErrors = append(validationErrors, "tabs.spacing must be non-negative")
	}
	if t.CloseButtonSize < 0 {
		validationErrors = append(validationErrors, "tabs.close_button_size must be non-negative")
	}
	if t.DragThreshold < 0 {
		validationErrors = append(validationErrors, "tabs.drag_threshold must be non-negative")
	}
	return validationErrors
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	if config.Terminal.CellWidth <= 0 {
		validationErrors = append(validationErrors, "terminal.cell_width must be positive")
	}
	if config.Terminal.CellHeight <= 0 {
		validationErrors = append(validationErrors, "terminal.cell_height must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "disabled": true,
	}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal, disabled (got: %s)",
			config.Logging.Level,
		))
	}

	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[config.Logging.Format] {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	switch config.Appearance.ColorScheme {
	case ColorSchemeDark, ColorSchemeLight, ColorSchemeAuto:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"appearance.color_scheme must be one of: dark, light, auto (got: %s)",
			config.Appearance.ColorScheme,
		))
	}

	if err := config.Appearance.DarkPalette.themePalette().Validate(); err != nil {
		validationErrors = append(validationErrors, "appearance.dark_palette."+err.Error())
	}
	if err := config.Appearance.LightPalette.themePalette().Validate(); err != nil {
		validationErrors = append(validationErrors, "appearance.light_palette."+err.Error())
	}
	return validationErrors
}

func (p ColorPalette) themePalette() theme.Palette {
	return theme.Palette{
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
