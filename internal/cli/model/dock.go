// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/termcanvas"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/tabstrip"
)

// statusRows is the number of rows below the canvas.
const statusRows = 1

// ConfigChangedMsg carries a reloaded configuration into the model.
type ConfigChangedMsg struct {
	Config *config.Config
}

// DockModelConfig holds configuration for the dock model.
type DockModelConfig struct {
	Config *config.Config
	// Panels are docked into the centre on start, one tab each.
	Panels []string
	// Trace is finished by the first painted frame. May be nil.
	Trace *logging.StartupTrace
}

// DockModel hosts a dock area in the terminal. Mouse cells are mapped to
// layout units through the configured cell size, so splitters, tabs and
// drop zones behave as they would in a pixel host.
type DockModel struct {
	ctx    context.Context
	logger zerolog.Logger

	help     help.Model
	keys     styles.DockKeyMap
	theme    *styles.Theme
	treeView *styles.TreeRenderer

	area   *dock.Area
	canvas *termcanvas.Canvas
	ids    *entity.PanelIDSource

	cellW, cellH float64
	width        int
	height       int
	trace        *logging.StartupTrace

	// State
	focused  entity.PanelID
	pressed  entity.MouseButton
	held     bool
	showTree bool
	status   string
	created  int
	quitting bool
}

// NewDockModel creates a dock host for cfg. A nil config uses the defaults.
func NewDockModel(ctx context.Context, theme *styles.Theme, cfg DockModelConfig) *DockModel {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	log := logging.FromContext(ctx).With().Str("component", "dock-host").Logger()
	ctx = logging.WithContext(ctx, log)

	m := &DockModel{
		ctx:      ctx,
		logger:   log,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultDockKeyMap(),
		theme:    theme,
		treeView: styles.NewTreeRenderer(theme),
		ids:      entity.NewPanelIDSource(),
		cellW:    cfg.Config.Terminal.CellWidth,
		cellH:    cfg.Config.Terminal.CellHeight,
		width:    80,
		height:   24,
		trace:    cfg.Trace,
	}
	m.canvas = termcanvas.New(m.width, m.height-statusRows, termcanvas.WithCellSize(m.cellW, m.cellH))

	settings, metrics := TerminalGeometry(cfg.Config)
	m.area = dock.NewArea(ctx,
		dock.WithSettings(settings),
		dock.WithTheme(cfg.Config.Theme()),
		dock.WithTabBarFactory(tabstrip.NewFactory(metrics)),
		dock.WithPanelPainter(m.paintPanel),
	)
	m.area.SetBounds(m.canvas.Bounds())
	m.area.OnEvent(m.onDockEvent)

	for _, title := range cfg.Panels {
		m.area.AddPanel(m.newPanel(title), entity.DropZoneCenter, m.focusedNode(), 0)
	}
	m.status = "drag a tab onto a drop zone to dock it"
	m.trace.Mark("dock_area")
	return m
}

// TerminalGeometry maps cfg onto area settings and tab metrics for a
// terminal. Tab strips take exactly one row and splitters one column so
// they never share a cell with panel content.
func TerminalGeometry(cfg *config.Config) (dock.Settings, tabstrip.Metrics) {
	settings := cfg.DockSettings()
	if settings.TabBarHeight > 0 {
		settings.TabBarHeight = cfg.Terminal.CellHeight
	}
	if settings.SplitterThickness > 0 {
		settings.SplitterThickness = cfg.Terminal.CellWidth
	}

	metrics := cfg.TabMetrics()
	// The indicator would cover the tab title row.
	metrics.IndicatorHeight = 0
	return settings, metrics
}

// Area returns the hosted dock area.
func (m *DockModel) Area() *dock.Area { return m.area }

// Canvas returns the canvas the area paints on.
func (m *DockModel) Canvas() *termcanvas.Canvas { return m.canvas }

// Status returns the status line message.
func (m *DockModel) Status() string { return m.status }

// Init implements tea.Model.
func (m *DockModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *DockModel) resize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, statusRows+1)
	m.canvas.Resize(m.width, m.height-statusRows)
	m.area.SetBounds(m.canvas.Bounds())
	m.help.Width = m.width
	m.logger.Debug().Int("cols", m.width).Int("rows", m.height).Msg("terminal resized")
}

func (m *DockModel) handleMouse(msg tea.MouseMsg) {
	// Hit testing needs the rectangles of the current tree.
	m.area.Layout()

	event := entity.MouseEvent{Button: entity.MouseButtonLeft}
	pos := m.canvas.CellCenter(msg.X, msg.Y)
	event.X, event.Y = pos.X, pos.Y

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := mouseButton(msg.Button)
		if !ok {
			return
		}
		event.Button = button
		m.pressed, m.held = button, true
		m.area.OnMouseDown(event)

	case tea.MouseActionRelease:
		// Some encodings do not report which button was released.
		if m.held {
			event.Button = m.pressed
		}
		m.held = false
		m.area.OnMouseUp(event)

	case tea.MouseActionMotion:
		if m.held {
			event.Button = m.pressed
		}
		m.area.OnMouseMove(event)
	}
}

func mouseButton(b tea.MouseButton) (entity.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return entity.MouseButtonLeft, true
	case tea.MouseButtonMiddle:
		return entity.MouseButtonMiddle, true
	case tea.MouseButtonRight:
		return entity.MouseButtonRight, true
	default:
		return 0, false
	}
}

func (m *DockModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tree):
		m.showTree = !m.showTree

	case key.Matches(msg, m.keys.Cancel):
		m.area.CancelPanelDrag()

	case key.Matches(msg, m.keys.AddPanel):
		m.dock(entity.DropZoneCenter)
	case key.Matches(msg, m.keys.DockLeft):
		m.dock(entity.DropZoneLeft)
	case key.Matches(msg, m.keys.DockRight):
		m.dock(entity.DropZoneRight)
	case key.Matches(msg, m.keys.DockTop):
		m.dock(entity.DropZoneTop)
	case key.Matches(msg, m.keys.DockBottom):
		m.dock(entity.DropZoneBottom)

	case key.Matches(msg, m.keys.Close):
		if panel := m.focusedPanel(); panel != nil {
			if !m.area.ClosePanel(panel.ID()) {
				m.status = fmt.Sprintf("%q cannot be closed", panel.Title())
			}
		}

	case key.Matches(msg, m.keys.NextTab):
		m.nextTab()
	}
	return m, nil
}

// dock adds a new panel at zone of the focused tab group.
func (m *DockModel) dock(zone entity.DropZone) {
	panel := m.newPanel("")
	if m.area.AddPanel(panel, zone, m.focusedNode(), 0) == nil {
		m.status = fmt.Sprintf("cannot dock %s", zone)
		return
	}
	m.area.ActivatePanel(panel.ID())
	m.status = fmt.Sprintf("docked %s (%s)", panel.Title(), zone)
}

func (m *DockModel) newPanel(title string) *entity.Panel {
	m.created++
	if title == "" {
		title = fmt.Sprintf("Panel %d", m.created)
	}
	return entity.NewPanel(m.ids, title)
}

func (m *DockModel) nextTab() {
	node := m.focusedNode()
	if node == nil || node.PanelCount() < 2 {
		return
	}
	next := node.Panels()[(node.ActiveTabIndex()+1)%node.PanelCount()]
	m.area.ActivatePanel(next.ID())
}

// focusedPanel is the last activated panel still docked, falling back to
// the active panel of the first leaf.
func (m *DockModel) focusedPanel() *entity.Panel {
	if panel := m.area.FindPanel(m.focused); panel != nil {
		return panel
	}
	if root := m.area.Root(); root != nil {
		if leaf := root.FirstLeaf(); leaf != nil {
			return leaf.ActivePanel()
		}
	}
	return nil
}

func (m *DockModel) focusedNode() *entity.Node {
	if panel := m.focusedPanel(); panel != nil {
		return panel.Owner()
	}
	return m.area.Root()
}

func (m *DockModel) onDockEvent(event entity.DockEvent) {
	switch e := event.(type) {
	case entity.PanelActivatedEvent:
		m.focused = e.PanelID
		if panel := m.area.FindPanel(e.PanelID); panel != nil {
			m.status = "focused " + panel.Title()
		}
	case entity.PanelAddedEvent:
		m.focused = e.PanelID
		if panel := m.area.FindPanel(e.PanelID); panel != nil {
			m.status = "docked " + panel.Title()
		}
	case entity.PanelClosedEvent:
		m.status = fmt.Sprintf("closed panel %d", e.PanelID)
	case entity.DragStartEvent:
		m.status = "dragging, release on a zone or press esc"
	case entity.DragEndEvent:
		switch {
		case e.Cancelled:
			m.status = "drag canceled"
		case e.Zone == entity.DropZoneNone:
			m.status = "dropped outside any zone"
		default:
			m.status = "dropped on " + e.Zone.String()
		}
	case entity.SplitterChangedEvent:
		m.status = fmt.Sprintf("split ratio %.2f", e.NewRatio)
	}
}

func (m *DockModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	settings, metrics := TerminalGeometry(cfg)
	m.cellW, m.cellH = cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
	m.canvas = termcanvas.New(m.width, m.height-statusRows, termcanvas.WithCellSize(m.cellW, m.cellH))

	m.area.ApplySettings(settings)
	m.area.SetTheme(cfg.Theme())
	m.area.SetTabBarFactory(tabstrip.NewFactory(metrics))
	m.area.SetBounds(m.canvas.Bounds())

	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.treeView = styles.NewTreeRenderer(m.theme)

	m.status = "configuration reloaded"
	m.logger.Info().Msg("applied reloaded configuration")
}

// paintPanel fills panel content with its title and size.
func (m *DockModel) paintPanel(r port.Renderer, theme port.Theme, panel *entity.Panel, bounds entity.Rect) {
	r.DrawTextInBounds(panel.Title(), bounds, theme.TextPrimary, port.HAlignCenter, port.VAlignMiddle)

	info := entity.Rect{X: bounds.X, Y: bounds.Center().Y + m.cellH, W: bounds.W, H: m.cellH}
	size := fmt.Sprintf("%d cols × %d rows", int(bounds.W/m.cellW), int(bounds.H/m.cellH))
	r.DrawTextInBounds(size, info, theme.TextSecondary, port.HAlignCenter, port.VAlignTop)
}

// View implements tea.Model.
func (m *DockModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.showTree:
		body = lipgloss.NewStyle().
			Width(m.width).
			Height(m.height - statusRows).
			Padding(0, 1).
			Render(m.treeView.Render(m.area.Tree()))
	case m.area.Tree().IsEmpty():
		body = lipgloss.Place(m.width, m.height-statusRows, lipgloss.Center, lipgloss.Center,
			m.theme.Subtle.Render("No panels. Press a to add one."))
	default:
		m.canvas.Clear(m.area.Theme().BgDark)
		m.area.Render(m.canvas)
		body = m.canvas.String()
	}
	m.trace.Finish()

	return body + "\n" + m.renderStatus()
}

func (m *DockModel) renderStatus() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	left := m.theme.Highlight.Render(fmt.Sprintf("%d panels", len(m.area.AllPanels())))
	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	status := runewidth.Truncate(m.status, max(gap, 0), "…")
	line := left + "  " + m.theme.Subtle.Render(status)
	pad := m.width - lipgloss.Width(line) - lipgloss.Width(right)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line + right
}
