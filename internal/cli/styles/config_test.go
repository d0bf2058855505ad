package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

func newRenderer() *styles.ConfigRenderer {
	return styles.NewConfigRenderer(styles.NewTheme(config.DefaultConfig()))
}

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	out := newRenderer().RenderConfigInfo("/tmp/dockyard/config.toml", 3, 1)

	require.Contains(t, out, "/tmp/dockyard/config.toml")
	require.Contains(t, out, "new settings available")
	require.Contains(t, out, "unknown settings will be dropped")
}

func TestConfigRenderer_RenderConfigInfoWithoutChanges(t *testing.T) {
	out := newRenderer().RenderConfigInfo("/tmp/dockyard/config.toml", 0, 0)

	require.NotContains(t, out, "new settings")
	require.NotContains(t, out, "unknown settings")
}

func TestConfigRenderer_RenderMissingKeys(t *testing.T) {
	r := newRenderer()

	require.Empty(t, r.RenderMissingKeys(nil))

	out := r.RenderMissingKeys([]port.KeyInfo{
		{Key: "dock.tab_bar_height", Type: "float", DefaultValue: "24"},
	})
	require.Contains(t, out, "Missing settings (1)")
	require.Contains(t, out, "dock.tab_bar_height")
	require.Contains(t, out, "24")
}

func TestConfigRenderer_RenderUnknownKeys(t *testing.T) {
	r := newRenderer()

	require.Empty(t, r.RenderUnknownKeys(nil))
	require.Contains(t, r.RenderUnknownKeys([]string{"dock.legacy_mode"}), "dock.legacy_mode")
}

func TestConfigRenderer_RenderDiff(t *testing.T) {
	out := newRenderer().RenderDiff("Config migration changes:\n\n  + tabs.padding = 8\n  - dock.legacy_mode = true (unknown)\n")

	require.Contains(t, out, "+ tabs.padding = 8")
	require.Contains(t, out, "- dock.legacy_mode = true (unknown)")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := newRenderer()

	require.Contains(t, r.RenderMigrationSuccess(2, "/tmp/dockyard/config.toml"), "config.toml")
	require.Contains(t, r.RenderUpToDate("/tmp/dockyard/config.toml"), "up to date")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderMigrateHint(), "dockyard config migrate")
	require.Contains(t, r.RenderNoConfigFile("/tmp/x.toml"), "created on first run")
}

func TestConfigSchemaRenderer_Render(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(nil))
	keys := config.NewSchemaProvider().GetSchema()

	out := r.Render(keys)

	for _, section := range []string{config.SectionDock, config.SectionDropZones, config.SectionTabs, config.SectionLogging} {
		require.Contains(t, out, section)
	}
	require.Contains(t, out, "dock.splitter_thickness")
	require.Contains(t, out, "Values: console, json")
	require.Contains(t, out, "Env: DOCKYARD_DOCK_SPLITTER_THICKNESS")
}

func TestConfigSchemaRenderer_Empty(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(nil))

	require.Contains(t, r.Render(nil), "No configuration keys found")
}

func TestConfigSchemaRenderer_RenderJSON(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(nil))

	out, err := r.RenderJSON([]entity.ConfigKey{{Key: "tabs.padding", Type: "float64", Default: "8", Section: config.SectionTabs}})

	require.NoError(t, err)
	require.JSONEq(t, `[{"key":"tabs.padding","type":"float64","default":"8","description":"","section":"Tabs"}]`, out)
}
