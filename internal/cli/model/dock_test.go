package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

func newTestDockModel(t *testing.T, panels ...string) *DockModel {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
	cfg := config.DefaultConfig()
	return NewDockModel(ctx, styles.NewTheme(cfg), DockModelConfig{Config: cfg, Panels: panels})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(m *DockModel, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func TestTerminalGeometry(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		wantTabBar    float64
		wantSplitter  float64
		wantIndicator float64
	}{
		{
			name:         "defaults snap to one cell",
			mutate:       func(*config.Config) {},
			wantTabBar:   16,
			wantSplitter: 8,
		},
		{
			name: "hidden strips stay hidden",
			mutate: func(c *config.Config) {
				c.Dock.TabBarHeight = 0
				c.Dock.SplitterThickness = 0
			},
		},
		{
			name: "custom cell size",
			mutate: func(c *config.Config) {
				c.Terminal.CellWidth = 10
				c.Terminal.CellHeight = 20
			},
			wantTabBar:   20,
			wantSplitter: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			settings, metrics := TerminalGeometry(cfg)

			assert.InDelta(t, tt.wantTabBar, settings.TabBarHeight, 1e-9)
			assert.InDelta(t, tt.wantSplitter, settings.SplitterThickness, 1e-9)
			assert.InDelta(t, tt.wantIndicator, metrics.IndicatorHeight, 1e-9)
			assert.InDelta(t, cfg.Tabs.MaxWidth, metrics.MaxTabWidth, 1e-9)
		})
	}
}

func TestDockModel_InitialPanelsShareOneGroup(t *testing.T) {
	m := newTestDockModel(t, "Files", "Editor")

	root := m.Area().Root()
	require.NotNil(t, root)
	assert.True(t, root.IsTabs())
	assert.Equal(t, 2, root.PanelCount())
	assert.Equal(t, "Files", root.ActivePanel().Title())
	assert.Nil(t, m.Init())
}

func TestDockModel_ResizeMapsCellsToLayoutUnits(t *testing.T) {
	m := newTestDockModel(t)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	cols, rows := m.Canvas().Size()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 29, rows, "one row is kept for the status line")
	assert.Equal(t, entity.Rect{W: 800, H: 464}, m.Area().Bounds())
}

func TestDockModel_KeyboardDocking(t *testing.T) {
	m := newTestDockModel(t)

	m.Update(runeKey("a"))
	require.NotNil(t, m.Area().Root())
	assert.True(t, m.Area().Root().IsTabs())
	assert.Contains(t, m.Status(), "Panel 1")

	m.Update(runeKey("l"))
	root := m.Area().Root()
	require.True(t, root.IsSplit())
	assert.Equal(t, entity.SplitHorizontal, root.SplitDirection())
	assert.Equal(t, "Panel 1", root.First().ActivePanel().Title())
	assert.Equal(t, "Panel 2", root.Second().ActivePanel().Title())

	// The new panel has focus, so the next dock splits its group.
	m.Update(runeKey("j"))
	second := m.Area().Root().Second()
	require.True(t, second.IsSplit())
	assert.Equal(t, entity.SplitVertical, second.SplitDirection())
	assert.Len(t, m.Area().AllPanels(), 3)
	assert.NoError(t, m.Area().Tree().Validate())
}

func TestDockModel_CloseAndCycleTabs(t *testing.T) {
	m := newTestDockModel(t)
	m.Update(runeKey("a"))
	m.Update(runeKey("a"))

	root := m.Area().Root()
	require.Equal(t, 2, root.PanelCount())
	assert.Equal(t, "Panel 2", root.ActivePanel().Title(), "added tabs are activated")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Panel 1", root.ActivePanel().Title())
	assert.Equal(t, "focused Panel 1", m.Status())

	m.Update(runeKey("x"))
	assert.Len(t, m.Area().AllPanels(), 1)
	assert.Equal(t, "Panel 2", m.Area().Root().ActivePanel().Title())

	m.Update(runeKey("x"))
	assert.True(t, m.Area().Tree().IsEmpty())
	assert.Contains(t, ansi.Strip(m.View()), "No panels")
}

func TestDockModel_ToggleViews(t *testing.T) {
	m := newTestDockModel(t, "Files", "Editor")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Files")
	assert.Contains(t, out, "Editor")
	assert.Contains(t, out, "2 panels")

	m.Update(runeKey("t"))
	assert.Contains(t, ansi.Strip(m.View()), "Files* Editor")

	m.Update(runeKey("t"))
	m.Update(runeKey("?"))
	assert.Contains(t, ansi.Strip(m.View()), "cancel drag", "full help lists every binding")
}

func TestDockModel_Quit(t *testing.T) {
	m := newTestDockModel(t, "Files")

	_, cmd := m.Update(runeKey("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestDockModel_ClickCloseGlyph(t *testing.T) {
	m := newTestDockModel(t, "Files")

	// The single tab spans x 8..208; its close button covers x 190..204,
	// so the centre of column 24 (x=196) lands on it.
	click(m, 24, 0)

	assert.True(t, m.Area().Tree().IsEmpty())
	assert.Contains(t, m.Status(), "closed panel")
}

func TestDockModel_ClickTabActivates(t *testing.T) {
	m := newTestDockModel(t, "Files", "Editor")

	// Second tab starts at x=209.
	click(m, 30, 0)

	assert.Equal(t, "Editor", m.Area().Root().ActivePanel().Title())
	assert.Len(t, m.Area().AllPanels(), 2)
}

func TestDockModel_DragSplitter(t *testing.T) {
	m := newTestDockModel(t)
	m.Update(runeKey("a"))
	m.Update(runeKey("l"))
	root := m.Area().Root()
	require.True(t, root.IsSplit())
	before := root.SplitRatio()

	m.Area().Layout()
	col := -1
	for c := 0; c < 80; c++ {
		pos := m.Canvas().CellCenter(c, 5)
		if m.Area().HitTestSplitter(pos.X, pos.Y) != nil {
			col = c
			break
		}
	}
	require.NotEqual(t, -1, col, "some column must hit the splitter")

	m.Update(tea.MouseMsg{X: col, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.Area().IsDraggingSplitter())
	m.Update(tea.MouseMsg{X: col + 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: col + 5, Y: 5, Action: tea.MouseActionRelease})

	assert.False(t, m.Area().IsDraggingSplitter())
	assert.Greater(t, root.SplitRatio(), before)
	assert.Contains(t, m.Status(), "split ratio")
}

func TestDockModel_IgnoresWheelAndRightButton(t *testing.T) {
	m := newTestDockModel(t, "Files")

	m.Update(tea.MouseMsg{X: 24, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m.Update(tea.MouseMsg{X: 24, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m.Update(tea.MouseMsg{X: 24, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})

	assert.Len(t, m.Area().AllPanels(), 1)
}

func TestDockModel_ConfigChanged(t *testing.T) {
	m := newTestDockModel(t, "Files")
	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ColorSchemeLight
	cfg.Terminal.CellWidth = 10

	m.Update(ConfigChangedMsg{Config: cfg})

	assert.Equal(t, cfg.Theme(), m.Area().Theme())
	assert.InDelta(t, 10, m.Area().Settings().SplitterThickness, 1e-9)
	assert.Equal(t, entity.Rect{W: 800, H: 368}, m.Area().Bounds())
	assert.Equal(t, "configuration reloaded", m.Status())

	m.Update(ConfigChangedMsg{})
	assert.Equal(t, "configuration reloaded", m.Status(), "nil config is ignored")
}
