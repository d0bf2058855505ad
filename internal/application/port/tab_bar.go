package port

import "github.com/bnema/dockyard/internal/domain/entity"

// TabBarCallbacks are the signals a tab bar raises toward its dock area.
// Nil callbacks are skipped.
type TabBarCallbacks struct {
	// OnTabSelected fires when a tab is pressed.
	OnTabSelected func(index int)

	// OnTabCloseRequested fires when a tab's close button is released.
	OnTabCloseRequested func(panelID entity.PanelID)

	// OnTabDragStart fires once the pointer moved past the drag threshold
	// after pressing a tab.
	OnTabDragStart func(panelID entity.PanelID, pos entity.Vec2)
}

// TabBar is the visual strip of tabs drawn on top of a Tabs node.
// It reads panels from its node on every call and owns only visual state.
type TabBar interface {
	// Layout places the strip. Called every frame before Render.
	Layout(bounds entity.Rect)

	// Bounds returns the rectangle from the last Layout.
	Bounds() entity.Rect

	// Render draws the strip.
	Render(renderer Renderer, theme Theme)

	// OnMouseDown returns true when the event was consumed.
	OnMouseDown(event entity.MouseEvent) bool

	// OnMouseUp returns true when the event was consumed.
	OnMouseUp(event entity.MouseEvent) bool

	// OnMouseMove returns true when the event was consumed.
	OnMouseMove(event entity.MouseEvent) bool

	// SetCallbacks replaces the outbound signals.
	SetCallbacks(callbacks TabBarCallbacks)

	// Reset drops any press or drag state.
	Reset()
}

// TabBarFactory creates the tab bar for a Tabs node.
type TabBarFactory interface {
	NewTabBar(node *entity.Node) TabBar
}

// TabBarFactoryFunc adapts a function to TabBarFactory.
type TabBarFactoryFunc func(node *entity.Node) TabBar

// NewTabBar calls f.
func (f TabBarFactoryFunc) NewTabBar(node *entity.Node) TabBar {
	return f(node)
}
