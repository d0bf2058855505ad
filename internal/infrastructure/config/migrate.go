package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/dockyard/internal/application/port"
)

// Migrator implements port.ConfigMigrator for comparing and rewriting config files.
type Migrator struct {
	configFile string
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
}

var _ port.ConfigMigrator = (*Migrator)(nil)

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	// Reuse the manager's defaults so both agree on the key set.
	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{
		configFile:   configFile,
		defaultViper: v,
	}
}

// ConfigFile returns the path being migrated.
func (m *Migrator) ConfigFile() string {
	return m.configFile
}

// DetectChanges lists default keys missing from the file and file keys
// dockyard does not know. It returns nil when the file does not exist.
func (m *Migrator) DetectChanges() ([]port.KeyChange, error) {
	userKeys, err := m.userKeys()
	if err != nil || userKeys == nil {
		return nil, err
	}

	defaultKeys := m.defaultKeys()
	defaultSet := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		defaultSet[k] = true
	}

	var changes []port.KeyChange
	for _, key := range defaultKeys {
		if _, ok := userKeys[key]; ok {
			continue
		}
		changes = append(changes, port.KeyChange{
			Type:  port.KeyChangeAdded,
			Key:   key,
			Value: formatValue(m.defaultViper.Get(key)),
		})
	}

	removed := make([]string, 0)
	for key := range userKeys {
		if !defaultSet[key] {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	for _, key := range removed {
		changes = append(changes, port.KeyChange{
			Type:  port.KeyChangeRemoved,
			Key:   key,
			Value: formatValue(userKeys[key]),
		})
	}

	return changes, nil
}

// Migrate rewrites the config with user values layered over the defaults.
// Unknown keys are dropped because Config has nowhere to keep them.
func (m *Migrator) Migrate() ([]string, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	mgr, err := NewManagerForFile(m.configFile)
	if err != nil {
		return nil, err
	}
	mgr.setDefaults()
	if err := mgr.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := mgr.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(changes))
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			applied = append(applied, change.Key)
		case port.KeyChangeRemoved:
			applied = append(applied, fmt.Sprintf("(removed: %s)", change.Key))
		}
	}
	return applied, nil
}

// GetKeyInfo returns the type and default value of key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{
			Key:          key,
			Type:         "unknown",
			DefaultValue: "unknown",
		}
	}

	return port.KeyInfo{
		Key:          key,
		Type:         typeName(value),
		DefaultValue: formatValue(value),
	}
}

func (m *Migrator) defaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// userKeys parses the user's TOML file into flattened keys with values.
// A missing file yields nil without error.
func (m *Migrator) userKeys() (map[string]any, error) {
	data, err := os.ReadFile(m.configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	result := make(map[string]any)
	flatten(raw, "", result)
	return result, nil
}

// flatten recursively flattens a nested map to dot-notation keys.
func flatten(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}

		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, result)
			continue
		}
		result[key] = v
	}
}

// typeName returns a human-readable type name for a value.
func typeName(value any) string {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	default:
		return reflect.TypeOf(value).String()
	}
}

// formatValue returns a human-readable string representation of a value.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
