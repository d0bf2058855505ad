package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// Schema reflects the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Sections are optional; missing keys fall back to defaults.
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dockyard/config.schema.json"
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard, a docking layout engine"
	return schema
}

// SchemaJSON returns the indented JSON schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the JSON schema next to configFile and returns its path.
func WriteSchemaFile(configFile string) (string, error) {
	data, err := SchemaJSON()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
