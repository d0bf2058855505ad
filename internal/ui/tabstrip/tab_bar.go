package tabstrip

import (
	"math"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const noTab = -1

// tabRect is the computed geometry of one tab.
type tabRect struct {
	panel  *entity.Panel
	bounds entity.Rect
	close  entity.Rect
}

// TabBar draws the tabs of a single tab group and turns pointer input into
// selection, close and drag signals. It never mutates the node; the owning
// area reacts to the callbacks.
type TabBar struct {
	node    *entity.Node
	metrics Metrics
	bounds  entity.Rect
	tabs    []tabRect

	hoveredTab   int
	hoveredClose int

	pressedTab    int
	pressStart    entity.Vec2
	potentialDrag bool
	dragging      bool

	callbacks port.TabBarCallbacks
}

var _ port.TabBar = (*TabBar)(nil)

// New creates a tab bar for node.
func New(node *entity.Node, metrics Metrics) *TabBar {
	return &TabBar{
		node:         node,
		metrics:      metrics.normalized(),
		hoveredTab:   noTab,
		hoveredClose: noTab,
		pressedTab:   noTab,
	}
}

// NewFactory returns a factory creating tab bars with the given metrics.
func NewFactory(metrics Metrics) port.TabBarFactory {
	return port.TabBarFactoryFunc(func(node *entity.Node) port.TabBar {
		return New(node, metrics)
	})
}

// Layout places the strip and recomputes the tab rectangles.
func (tb *TabBar) Layout(bounds entity.Rect) {
	tb.bounds = bounds
	tb.relayout()
}

// Bounds returns the strip rectangle.
func (tb *TabBar) Bounds() entity.Rect {
	return tb.bounds
}

// Metrics returns the metrics in use.
func (tb *TabBar) Metrics() Metrics {
	return tb.metrics
}

// SetCallbacks replaces the outbound signals.
func (tb *TabBar) SetCallbacks(callbacks port.TabBarCallbacks) {
	tb.callbacks = callbacks
}

// Reset drops press, drag and hover state.
func (tb *TabBar) Reset() {
	tb.pressedTab = noTab
	tb.potentialDrag = false
	tb.dragging = false
	tb.hoveredTab = noTab
	tb.hoveredClose = noTab
}

// TabWidth returns the width every tab gets for count tabs.
func (tb *TabBar) TabWidth(count int) float64 {
	if count <= 0 {
		return 0
	}
	m := tb.metrics
	width := (tb.bounds.W-2*m.Padding)/float64(count) - m.Spacing
	return math.Max(m.MinTabWidth, math.Min(width, m.MaxTabWidth))
}

// TabBounds returns the rectangle of the tab at index, or false when out of range.
func (tb *TabBar) TabBounds(index int) (entity.Rect, bool) {
	tb.relayout()
	if index < 0 || index >= len(tb.tabs) {
		return entity.Rect{}, false
	}
	return tb.tabs[index].bounds, true
}

// CloseButtonBounds returns the close button of the tab at index, or false
// when the tab does not exist or its panel cannot be closed.
func (tb *TabBar) CloseButtonBounds(index int) (entity.Rect, bool) {
	tb.relayout()
	if index < 0 || index >= len(tb.tabs) || !tb.tabs[index].panel.Closable() {
		return entity.Rect{}, false
	}
	return tb.tabs[index].close, true
}

// HoveredTab returns the index under the pointer, or -1.
func (tb *TabBar) HoveredTab() int {
	return tb.hoveredTab
}

// TabState returns how the tab at index is drawn. A dragged tab wins over
// the active one, which wins over hover.
func (tb *TabBar) TabState(index int) entity.TabState {
	if tb.node == nil || index < 0 || index >= tb.node.PanelCount() {
		return entity.TabNormal
	}
	switch {
	case tb.dragging && index == tb.pressedTab:
		return entity.TabDragging
	case index == tb.node.ActiveTabIndex():
		return entity.TabActive
	case index == tb.hoveredTab:
		return entity.TabHovered
	default:
		return entity.TabNormal
	}
}

// IsDragging reports whether a pressed tab crossed the drag threshold.
func (tb *TabBar) IsDragging() bool {
	return tb.dragging
}

// relayout rebuilds the tab rectangles from the node's current panels.
// Panels may be added or removed between frames, so every entry point
// calls it before hit testing.
func (tb *TabBar) relayout() {
	tb.tabs = tb.tabs[:0]
	if tb.node == nil {
		return
	}

	panels := tb.node.Panels()
	if len(panels) == 0 {
		return
	}

	m := tb.metrics
	width := tb.TabWidth(len(panels))
	x := tb.bounds.X + m.Padding
	for _, panel := range panels {
		bounds := entity.Rect{X: x, Y: tb.bounds.Y, W: width, H: tb.bounds.H}
		closeBtn := entity.Rect{
			X: bounds.X + width - m.CloseButtonSize - m.CloseButtonMargin,
			Y: bounds.Y + (bounds.H-m.CloseButtonSize)/2,
			W: m.CloseButtonSize,
			H: m.CloseButtonSize,
		}
		tb.tabs = append(tb.tabs, tabRect{panel: panel, bounds: bounds, close: closeBtn})
		x += width + m.Spacing
	}
}

func (tb *TabBar) tabAt(pos entity.Vec2) int {
	for i, tab := range tb.tabs {
		if tab.bounds.Contains(pos) {
			return i
		}
	}
	return noTab
}

func (tb *TabBar) closeAt(pos entity.Vec2) int {
	for i, tab := range tb.tabs {
		if tab.panel.Closable() && tab.close.Contains(pos) {
			return i
		}
	}
	return noTab
}

// OnMouseDown selects the tab under the pointer and arms a potential drag.
// Presses on a close button are consumed without selecting.
func (tb *TabBar) OnMouseDown(event entity.MouseEvent) bool {
	if event.Button != entity.MouseButtonLeft {
		return false
	}
	tb.relayout()

	pos := event.Pos()
	if tb.closeAt(pos) != noTab {
		return true
	}

	index := tb.tabAt(pos)
	if index == noTab {
		return false
	}

	tb.pressedTab = index
	tb.pressStart = pos
	tb.potentialDrag = true
	tb.dragging = false

	if tb.callbacks.OnTabSelected != nil {
		tb.callbacks.OnTabSelected(index)
	}
	return true
}

// OnMouseUp ends a press. Releasing over a close button requests the close.
func (tb *TabBar) OnMouseUp(event entity.MouseEvent) bool {
	if event.Button != entity.MouseButtonLeft {
		return false
	}
	tb.relayout()

	if tb.dragging {
		tb.clearPress()
		return true
	}
	tb.clearPress()

	index := tb.closeAt(event.Pos())
	if index == noTab {
		return false
	}

	if tb.callbacks.OnTabCloseRequested != nil {
		tb.callbacks.OnTabCloseRequested(tb.tabs[index].panel.ID())
	}
	return true
}

// OnMouseMove tracks hover and starts a drag once the pressed tab moved
// past the threshold.
func (tb *TabBar) OnMouseMove(event entity.MouseEvent) bool {
	tb.relayout()

	pos := event.Pos()
	tb.hoveredTab = tb.tabAt(pos)
	tb.hoveredClose = tb.closeAt(pos)

	if tb.dragging {
		return true
	}

	if !tb.potentialDrag || tb.pressedTab == noTab || tb.pressedTab >= len(tb.tabs) {
		return false
	}

	if math.Hypot(pos.X-tb.pressStart.X, pos.Y-tb.pressStart.Y) <= tb.metrics.DragThreshold {
		return false
	}

	tb.dragging = true
	tb.potentialDrag = false
	if tb.callbacks.OnTabDragStart != nil {
		tb.callbacks.OnTabDragStart(tb.tabs[tb.pressedTab].panel.ID(), pos)
	}
	return true
}

func (tb *TabBar) clearPress() {
	tb.pressedTab = noTab
	tb.potentialDrag = false
	tb.dragging = false
}

// Render draws the strip background, each tab and its close glyph.
func (tb *TabBar) Render(renderer port.Renderer, theme port.Theme) {
	if renderer == nil || tb.bounds.Empty() {
		return
	}
	tb.relayout()

	renderer.DrawRect(tb.bounds, theme.BgDark)

	for i, tab := range tb.tabs {
		tb.renderTab(renderer, theme, i, tab, tb.TabState(i))
	}
}

func (tb *TabBar) renderTab(renderer port.Renderer, theme port.Theme, index int, tab tabRect, state entity.TabState) {
	m := tb.metrics
	active := state == entity.TabActive

	bg := theme.BgDark
	switch state {
	case entity.TabActive:
		bg = theme.BgLight
	case entity.TabHovered, entity.TabDragging:
		bg = theme.BgMedium
	}
	renderer.DrawRect(tab.bounds, bg)

	if active && m.IndicatorHeight > 0 {
		renderer.DrawRect(entity.Rect{
			X: tab.bounds.X,
			Y: tab.bounds.Y + tab.bounds.H - m.IndicatorHeight,
			W: tab.bounds.W,
			H: m.IndicatorHeight,
		}, theme.Accent)
	}

	textWidth := tab.bounds.W - 2*m.Padding
	if tab.panel.Closable() {
		textWidth -= m.CloseButtonSize + m.CloseButtonMargin
	}
	text := entity.Rect{X: tab.bounds.X + m.Padding, Y: tab.bounds.Y, W: math.Max(0, textWidth), H: tab.bounds.H}

	color := theme.TextSecondary
	if active {
		color = theme.TextPrimary
	}
	renderer.DrawTextInBounds(tab.panel.Title(), text, color, port.HAlignLeft, port.VAlignMiddle)

	if tab.panel.Closable() {
		tb.renderClose(renderer, theme, index, tab.close)
	}
}

func (tb *TabBar) renderClose(renderer port.Renderer, theme port.Theme, index int, bounds entity.Rect) {
	color := theme.TextSecondary
	if index == tb.hoveredClose {
		color = theme.Error
	}

	c := bounds.Center()
	arm := tb.metrics.CloseButtonSize * 0.3
	thickness := tb.metrics.CloseThickness
	renderer.DrawLine(entity.Vec2{X: c.X - arm, Y: c.Y - arm}, entity.Vec2{X: c.X + arm, Y: c.Y + arm}, color, thickness)
	renderer.DrawLine(entity.Vec2{X: c.X + arm, Y: c.Y - arm}, entity.Vec2{X: c.X - arm, Y: c.Y + arm}, color, thickness)
}
