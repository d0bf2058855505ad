package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative splitter", mutate: func(c *Config) { c.Dock.SplitterThickness = -1 }, wantKey: "dock.splitter_thickness"},
		{name: "negative tab bar", mutate: func(c *Config) { c.Dock.TabBarHeight = -1 }, wantKey: "dock.tab_bar_height"},
		{name: "negative min width", mutate: func(c *Config) { c.Dock.MinPanelWidth = -5 }, wantKey: "dock.min_panel_width"},
		{name: "dock ratio zero", mutate: func(c *Config) { c.Dock.DefaultDockRatio = 0 }, wantKey: "dock.default_dock_ratio"},
		{name: "edge threshold above half", mutate: func(c *Config) { c.DropZones.EdgeThreshold = 0.6 }, wantKey: "drop_zones.edge_threshold"},
		{name: "zone size zero", mutate: func(c *Config) { c.DropZones.ZoneSize = 0 }, wantKey: "drop_zones.zone_size"},
		{name: "preview alpha above one", mutate: func(c *Config) { c.DropZones.PreviewAlpha = 1.5 }, wantKey: "drop_zones.preview_alpha"},
		{name: "split ratio one", mutate: func(c *Config) { c.DropZones.SplitRatio = 1 }, wantKey: "drop_zones.split_ratio"},
		{name: "tab max below min", mutate: func(c *Config) { c.Tabs.MaxWidth = 10 }, wantKey: "tabs.max_width"},
		{name: "negative drag threshold", mutate: func(c *Config) { c.Tabs.DragThreshold = -1 }, wantKey: "tabs.drag_threshold"},
		{name: "zero cell width", mutate: func(c *Config) { c.Terminal.CellWidth = 0 }, wantKey: "terminal.cell_width"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{name: "bad scheme", mutate: func(c *Config) { c.Appearance.ColorScheme = "sepia" }, wantKey: "appearance.color_scheme"},
		{name: "bad hex", mutate: func(c *Config) { c.Appearance.DarkPalette.Accent = "blue" }, wantKey: "appearance.dark_palette.accent"},
		{name: "empty hex keeps default", mutate: func(c *Config) { c.Appearance.LightPalette.Border = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.SplitterThickness = -1
	cfg.Logging.Level = "loud"

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:")
	assert.Contains(t, err.Error(), "dock.splitter_thickness")
	assert.Contains(t, err.Error(), "logging.level")
	require.Error(t, Validate(nil))
}
