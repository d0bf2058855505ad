package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager reading the given TOML file.
func NewManagerForFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, errors.New("config file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Set up environment variable support: DOCKYARD_DOCK_SPLITTER_THICKNESS, ...
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short logging variables shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A missing
// file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" || config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	if strings.TrimSpace(config.Logging.LogDir) == "" {
		if dir, err := GetLogDir(); err == nil {
			config.Logging.LogDir = dir
		}
	}

	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	case ColorSchemeAuto:
		config.Appearance.ColorScheme = ColorSchemeAuto
	default:
		config.Appearance.ColorScheme = ColorSchemeDark
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to disk and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	if m.watching {
		// The watcher would reload a file we already hold in memory.
		m.skipNextReload = true
		configCopy := *cfg
		m.config = &configCopy
		return nil
	}
	return m.reload()
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	_, err := WriteSchemaFile(m.configFile)
	return err
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setDockDefaults(defaults)
	m.setDropZoneDefaults(defaults)
	m.setTabsDefaults(defaults)
	m.setTerminalDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setDockDefaults(defaults *Config) {
	m.viper.SetDefault("dock.splitter_thickness", defaults.Dock.SplitterThickness)
	m.viper.SetDefault("dock.tab_bar_height", defaults.Dock.TabBarHeight)
	m.viper.SetDefault("dock.min_panel_width", defaults.Dock.MinPanelWidth)
	m.viper.SetDefault("dock.min_panel_height", defaults.Dock.MinPanelHeight)
	m.viper.SetDefault("dock.default_dock_ratio", defaults.Dock.DefaultDockRatio)
}

func (m *Manager) setDropZoneDefaults(defaults *Config) {
	m.viper.SetDefault("drop_zones.edge_threshold", defaults.DropZones.EdgeThreshold)
	m.viper.SetDefault("drop_zones.zone_size", defaults.DropZones.ZoneSize)
	m.viper.SetDefault("drop_zones.zone_gap", defaults.DropZones.ZoneGap)
	m.viper.SetDefault("drop_zones.preview_alpha", defaults.DropZones.PreviewAlpha)
	m.viper.SetDefault("drop_zones.split_ratio", defaults.DropZones.SplitRatio)
}

func (m *Manager) setTabsDefaults(defaults *Config) {
	m.viper.SetDefault("tabs.min_width", defaults.Tabs.MinWidth)
	m.viper.SetDefault("tabs.max_width", defaults.Tabs.MaxWidth)
	m.viper.SetDefault("tabs.padding", defaults.Tabs.Padding)
	m.viper.SetDefault("tabs.spacing", defaults.Tabs.Spacing)
	m.viper.SetDefault("tabs.close_button_size", defaults.Tabs.CloseButtonSize)
	m.viper.SetDefault("tabs.drag_threshold", defaults.Tabs.DragThreshold)
}

func (m *Manager) setTerminalDefaults(defaults *Config) {
	m.viper.SetDefault("terminal.cell_width", defaults.Terminal.CellWidth)
	m.viper.SetDefault("terminal.cell_height", defaults.Terminal.CellHeight)
	m.viper.SetDefault("terminal.all_motion", defaults.Terminal.AllMotion)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	setPaletteDefaults(m.viper, "appearance.dark_palette", defaults.Appearance.DarkPalette)
	setPaletteDefaults(m.viper, "appearance.light_palette", defaults.Appearance.LightPalette)
}

func setPaletteDefaults(v *viper.Viper, prefix string, p ColorPalette) {
	for name, value := range p.tokens() {
		v.SetDefault(prefix+"."+name, value)
	}
}

// tokens maps config key names to palette values.
func (p ColorPalette) tokens() map[string]string {
	return map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"accent_hover":    p.AccentHover,
		"border":          p.Border,
		"zone_idle":       p.ZoneIdle,
	}
}
