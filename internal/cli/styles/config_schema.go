package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKey) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)
	parts := []string{r.renderHeader(), ""}

	sectionOrder := []string{
		config.SectionDock,
		config.SectionDropZones,
		config.SectionTabs,
		config.SectionTerminal,
		config.SectionAppearance,
		config.SectionLogging,
	}

	for _, section := range sectionOrder {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKey) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference"))
}

func groupBySection(keys []entity.ConfigKey) map[string][]entity.ConfigKey {
	sections := make(map[string][]entity.ConfigKey)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKey) string {
	var lines []string

	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	body := strings.Join(lines, "\n")

	// Header sits directly on the keys, so the box drops its top padding.
	return r.theme.Box.PaddingTop(0).Render(r.theme.Highlight.Render(name) + "\n" + body)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKey) string {
	keyStyle := r.theme.Normal.Bold(true)
	typeStyle := r.theme.Subtle
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	descStyle := r.theme.Subtle
	valuesStyle := r.theme.Normal

	line1 := fmt.Sprintf(
		"%s  %s  %s",
		keyStyle.Render(key.Key),
		typeStyle.Render(key.Type),
		defaultStyle.Render(key.Default),
	)

	line2 := fmt.Sprintf("  %s", descStyle.Render(key.Description))
	env := fmt.Sprintf("  %s", typeStyle.Render("Env: "+key.EnvVar()))

	result := line1 + "\n" + line2 + "\n" + env

	if len(key.Values) > 0 {
		valuesText := "Values: " + strings.Join(key.Values, ", ")
		line3 := fmt.Sprintf("  %s", valuesStyle.Render(valuesText))
		result += "\n" + line3
	} else if key.Range != "" {
		rangeText := "Range: " + key.Range
		line3 := fmt.Sprintf("  %s", valuesStyle.Render(rangeText))
		result += "\n" + line3
	}

	return result
}
