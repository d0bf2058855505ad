package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// schemaDirective points TOML language servers at the schema written by
// WriteSchemaFile next to the config.
const schemaDirective = "#:schema ./" + schemaFileName + "\n\n"

var sectionRegex = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// EncodeConfig renders cfg as TOML with sections in alphabetical order.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to path with deterministic
// section order. The file is replaced atomically so a watcher never sees a
// half-written config.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(append([]byte(schemaDirective), data...))
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", firstErr(writeErr, closeErr))
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
// Top-level keys stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	for _, sec := range sections {
		if result.Len() > 0 {
			result.WriteString("\n")
		}
		// Drop trailing blank lines; the separator above restores one.
		lines := sec.lines
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		for _, line := range lines {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	return result.String()
}
