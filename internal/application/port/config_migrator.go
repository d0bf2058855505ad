package port

// KeyChangeType classifies a difference between the user config and the defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key missing from the user config.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRemoved is a user key no longer known to dockyard.
	KeyChangeRemoved
)

// KeyChange is one detected difference.
type KeyChange struct {
	Type  KeyChangeType
	Key   string
	Value string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "dock.splitter_thickness").
	Key string
	// Type is the Go type of the value (e.g., "bool", "float", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator compares the user's config file with the defaults and
// rewrites it.
type ConfigMigrator interface {
	// DetectChanges returns added and removed keys. It returns nil when the
	// file does not exist yet.
	DetectChanges() ([]KeyChange, error)

	// Migrate rewrites the config file with every default key present and
	// unknown keys dropped. Returns the keys that changed.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo

	// ConfigFile returns the path being migrated.
	ConfigFile() string
}
