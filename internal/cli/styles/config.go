package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path with the pending change counts.
func (r *ConfigRenderer) RenderConfigInfo(path string, missingCount, unknownCount int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var status strings.Builder
	if missingCount > 0 {
		fmt.Fprintf(&status, "\n  %s %s new settings available",
			iconStyle.Render(IconInfo),
			countStyle.Render(fmt.Sprintf("%d", missingCount)),
		)
	}
	if unknownCount > 0 {
		fmt.Fprintf(&status, "\n  %s %s unknown settings will be dropped",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			countStyle.Render(fmt.Sprintf("%d", unknownCount)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status.String(),
	)
}

// RenderMissingKeys renders the list of missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Missing settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb,
			"    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Highlight.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		)
	}
	return sb.String()
}

// RenderUnknownKeys renders keys the file sets but dockyard does not read.
func (r *ConfigRenderer) RenderUnknownKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Unknown settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb, "    %s %s\n", r.theme.WarningStyle.Render("-"), r.theme.Subtle.Render(key))
	}
	return sb.String()
}

// RenderDiff renders a diff produced by usecase.FormatChangesAsDiff,
// colouring added and removed lines.
func (r *ConfigRenderer) RenderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "+"):
			lines[i] = r.theme.SuccessStyle.Render(line)
		case strings.HasPrefix(trimmed, "-"):
			lines[i] = r.theme.ErrorStyle.Render(line)
		default:
			lines[i] = r.theme.Subtle.Render(line)
		}
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Updated %s settings in %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return fmt.Sprintf(
		"\n  %s\n",
		r.theme.Subtle.Render("Run 'dockyard config migrate' to bring the file up to date."),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}
