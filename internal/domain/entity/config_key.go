package entity

import "strings"

// ConfigKey documents one dotted key of the dockyard config file, as listed
// by 'dockyard config keys'.
type ConfigKey struct {
	// Key is the dotted TOML path, e.g. "dock.splitter_thickness".
	Key string `json:"key"`

	// Type is the Go type of the value: string, bool, int or float64.
	Type string `json:"type"`

	// Default is the value DefaultConfig writes, formatted for display.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted strings of an enum key.
	Values []string `json:"values,omitempty"`

	// Range bounds a numeric key, e.g. "0-0.5" for the drop zone edge
	// threshold.
	Range string `json:"range,omitempty"`

	// Section is the heading the key is grouped under (Dock, Drop Zones,
	// Tabs and so on).
	Section string `json:"section"`
}

// EnvVar is the environment variable that overrides the key:
// dock.splitter_thickness maps to DOCKYARD_DOCK_SPLITTER_THICKNESS.
func (k ConfigKey) EnvVar() string {
	return "DOCKYARD_" + strings.ToUpper(strings.ReplaceAll(k.Key, ".", "_"))
}
