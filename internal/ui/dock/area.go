package dock

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Area is a docking region: it owns a tree of splits and tab groups, routes
// pointer input to splitters, tab bars and the drop zone detector, and
// paints the whole layout once per frame. An Area is not safe for
// concurrent use; hosts call it from their UI loop.
type Area struct {
	ctx    context.Context
	logger zerolog.Logger

	tree     *entity.Tree
	uc       *usecase.ManageDockUseCase
	detector *ZoneDetector

	settings Settings
	theme    port.Theme
	painter  PanelPainter

	tabBarFactory port.TabBarFactory
	tabBars       map[entity.NodeID]port.TabBar

	bounds          entity.Rect
	draggedSplitter *entity.Node
	lastMouse       entity.Vec2

	onPanelClosed    []func(entity.PanelID)
	onPanelActivated []func(entity.PanelID)
	onLayoutChanged  []func()
	onEvent          []func(entity.DockEvent)
}

// NewArea creates an empty dock area.
func NewArea(ctx context.Context, opts ...Option) *Area {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	settings := o.settings.normalized()

	log := logging.FromContext(ctx).With().Str("component", "dock-area").Logger()
	log.Debug().
		Float64("splitter_thickness", settings.SplitterThickness).
		Float64("tab_bar_height", settings.TabBarHeight).
		Msg("creating dock area")

	tree := entity.NewTree()
	return &Area{
		ctx:           logging.WithContext(ctx, log),
		logger:        log,
		tree:          tree,
		uc:            o.useCase,
		detector:      NewZoneDetector(tree, settings.Zones),
		settings:      settings,
		theme:         o.theme,
		painter:       o.painter,
		tabBarFactory: o.tabBars,
		tabBars:       make(map[entity.NodeID]port.TabBar),
	}
}

// Tree returns the underlying tree. Mutating it directly bypasses signals
// and tab bar bookkeeping.
func (a *Area) Tree() *entity.Tree { return a.tree }

// Root returns the root node, nil when the area is empty.
func (a *Area) Root() *entity.Node { return a.tree.Root() }

// Detector returns the drop zone detector.
func (a *Area) Detector() *ZoneDetector { return a.detector }

// Settings returns the active geometry.
func (a *Area) Settings() Settings { return a.settings }

// Theme returns the palette used by Render.
func (a *Area) Theme() port.Theme { return a.theme }

// SetTheme replaces the palette.
func (a *Area) SetTheme(theme port.Theme) { a.theme = theme }

// ApplySettings replaces the geometry, for example after a config reload.
// Layout picks it up on the next frame.
func (a *Area) ApplySettings(settings Settings) {
	a.settings = settings.normalized()
	a.detector.ApplySettings(a.settings.Zones)
	a.logger.Debug().Msg("applied dock settings")
	a.emitLayoutChanged()
}

// SetBounds sets the area's rectangle in window coordinates.
func (a *Area) SetBounds(bounds entity.Rect) { a.bounds = bounds }

// Bounds returns the area's rectangle.
func (a *Area) Bounds() entity.Rect { return a.bounds }

// FindNode returns the node with id, nil when absent.
func (a *Area) FindNode(id entity.NodeID) *entity.Node { return a.tree.FindNode(id) }

// FindPanel returns the docked panel with id, nil when absent.
func (a *Area) FindPanel(id entity.PanelID) *entity.Panel { return a.tree.FindPanel(id) }

// FindNodeContainingPanel returns the Tabs node holding the panel with id.
func (a *Area) FindNodeContainingPanel(id entity.PanelID) *entity.Node {
	return a.tree.FindNodeContainingPanel(id)
}

// AllPanels returns every docked panel in leaf order.
func (a *Area) AllPanels() []*entity.Panel { return a.tree.AllPanels() }

// AddPanel docks a detached panel. A nil or foreign target means the root
// and a non-positive or NaN ratio means the configured default. Returns the Tabs
// node that received the panel, nil when the panel was rejected.
func (a *Area) AddPanel(panel *entity.Panel, zone entity.DropZone, target *entity.Node, ratio float64) *entity.Node {
	if !(ratio > 0) {
		ratio = a.settings.DefaultDockRatio
	}

	wasEmpty := a.tree.IsEmpty()
	node := a.uc.AddPanel(a.ctx, a.tree, panel, zone, target, ratio)
	if node == nil {
		return nil
	}

	if zone.IsEdge() && !wasEmpty {
		a.emitSplit(node, zone.SplitDirection())
	}
	a.emit(entity.PanelAddedEvent{PanelID: panel.ID(), NodeID: node.ID()})
	a.emitLayoutChanged()
	return node
}

// RemovePanel detaches the panel with id and collapses its node if it
// became empty. The caller takes the panel back. Returns nil for an
// unknown id.
func (a *Area) RemovePanel(id entity.PanelID) *entity.Panel {
	node := a.tree.FindNodeContainingPanel(id)
	if node == nil {
		return nil
	}
	nodeID := node.ID()

	panel, merge := a.uc.RemovePanel(a.ctx, a.tree, id)
	if panel == nil {
		return nil
	}

	a.emit(entity.PanelRemovedEvent{PanelID: id, NodeID: nodeID})
	a.afterMerge(merge)
	a.emitLayoutChanged()
	return panel
}

// ClosePanel removes the panel with id and notifies the closed listeners.
// Reports whether a panel was removed.
func (a *Area) ClosePanel(id entity.PanelID) bool {
	panel := a.RemovePanel(id)
	if panel == nil {
		return false
	}

	a.logger.Info().Uint32("panel_id", uint32(id)).Str("title", panel.Title()).Msg("closed panel")
	a.emit(entity.PanelClosedEvent{PanelID: id})
	for _, fn := range a.onPanelClosed {
		fn(id)
	}
	return true
}

// MovePanel re-docks a panel that already lives in this area. Zone None,
// a foreign panel or an impossible split leave the tree untouched and
// return false.
func (a *Area) MovePanel(panel *entity.Panel, target entity.DropTarget) bool {
	result, ok := a.uc.MovePanel(a.ctx, a.tree, panel, target)
	if !ok {
		return false
	}

	if target.Zone.IsEdge() {
		a.emitSplit(result.Destination, target.Zone.SplitDirection())
	}
	a.emit(entity.PanelRemovedEvent{PanelID: panel.ID(), NodeID: result.Source})
	a.emit(entity.PanelAddedEvent{PanelID: panel.ID(), NodeID: result.Destination.ID()})
	a.afterMerge(result.Merge)
	a.emitLayoutChanged()
	return true
}

// SplitNode wraps node and a new empty Tabs node into a split and returns
// the new Tabs node. ratio is the new node's share of the space.
func (a *Area) SplitNode(node *entity.Node, direction entity.SplitDirection, ratio float64, insertFirst bool) *entity.Node {
	leaf := a.uc.SplitNode(a.ctx, a.tree, node, direction, ratio, insertFirst)
	if leaf == nil {
		return nil
	}
	a.emitSplit(leaf, direction)
	a.emitLayoutChanged()
	return leaf
}

// TryMergeNode garbage-collects node if it is an empty Tabs node. Reports
// whether anything was removed.
func (a *Area) TryMergeNode(node *entity.Node) bool {
	merge := a.uc.TryMergeNode(a.ctx, a.tree, node)
	if !merge.Merged() {
		return false
	}
	a.afterMerge(merge)
	a.emitLayoutChanged()
	return true
}

// SetSplitRatio sets the ratio of the split with id. The value is clamped.
func (a *Area) SetSplitRatio(id entity.NodeID, ratio float64) bool {
	node := a.tree.FindNode(id)
	if node == nil || !node.IsSplit() {
		return false
	}
	old := node.SplitRatio()
	if !a.uc.SetSplitRatio(a.ctx, a.tree, id, ratio) {
		return false
	}
	a.emit(entity.SplitterChangedEvent{NodeID: id, OldRatio: old, NewRatio: node.SplitRatio()})
	a.emitLayoutChanged()
	return true
}

// ActivatePanel selects the tab of the panel with id.
func (a *Area) ActivatePanel(id entity.PanelID) bool {
	node := a.tree.FindNodeContainingPanel(id)
	if node == nil {
		return false
	}
	node.SetActiveTabIndex(node.FindPanelIndex(node.FindPanel(id)))
	a.emitActivated(node)
	return true
}

// OnPanelClosed registers a listener for panels closed through ClosePanel
// or a tab close button.
func (a *Area) OnPanelClosed(fn func(entity.PanelID)) {
	if fn != nil {
		a.onPanelClosed = append(a.onPanelClosed, fn)
	}
}

// OnPanelActivated registers a listener for tab selection.
func (a *Area) OnPanelActivated(fn func(entity.PanelID)) {
	if fn != nil {
		a.onPanelActivated = append(a.onPanelActivated, fn)
	}
}

// OnLayoutChanged registers a listener fired after every structural mutation.
func (a *Area) OnLayoutChanged(fn func()) {
	if fn != nil {
		a.onLayoutChanged = append(a.onLayoutChanged, fn)
	}
}

// OnEvent registers a listener for the full event stream.
func (a *Area) OnEvent(fn func(entity.DockEvent)) {
	if fn != nil {
		a.onEvent = append(a.onEvent, fn)
	}
}

func (a *Area) emit(event entity.DockEvent) {
	for _, fn := range a.onEvent {
		fn(event)
	}
}

func (a *Area) emitLayoutChanged() {
	a.emit(entity.LayoutChangedEvent{})
	for _, fn := range a.onLayoutChanged {
		fn()
	}
}

func (a *Area) emitActivated(node *entity.Node) {
	panel := node.ActivePanel()
	if panel == nil {
		return
	}
	a.emit(entity.PanelActivatedEvent{PanelID: panel.ID(), NodeID: node.ID()})
	for _, fn := range a.onPanelActivated {
		fn(panel.ID())
	}
}

func (a *Area) emitSplit(leaf *entity.Node, direction entity.SplitDirection) {
	if leaf == nil || leaf.Parent() == nil {
		return
	}
	a.emit(entity.NodeSplitEvent{
		ParentID:  leaf.Parent().ID(),
		NewNodeID: leaf.ID(),
		Direction: direction,
	})
}

// afterMerge drops tab bars of discarded nodes and reports the merge.
func (a *Area) afterMerge(merge usecase.MergeResult) {
	if !merge.Merged() {
		return
	}
	for _, id := range merge.Removed {
		delete(a.tabBars, id)
		if a.draggedSplitter != nil && a.draggedSplitter.ID() == id {
			a.draggedSplitter = nil
		}
	}
	a.emit(entity.NodeMergedEvent{Removed: merge.Removed, Remaining: merge.Remaining})
}

// tabBar returns the cached tab bar of a Tabs node, creating it on first use.
func (a *Area) tabBar(node *entity.Node) port.TabBar {
	if a.tabBarFactory == nil || node == nil || !node.IsTabs() {
		return nil
	}
	if bar, ok := a.tabBars[node.ID()]; ok {
		return bar
	}

	bar := a.tabBarFactory.NewTabBar(node)
	if bar == nil {
		return nil
	}
	bar.SetCallbacks(a.tabBarCallbacks(node))
	a.tabBars[node.ID()] = bar

	a.logger.Debug().Uint32("node_id", uint32(node.ID())).Msg("created tab bar")
	return bar
}

func (a *Area) tabBarCallbacks(node *entity.Node) port.TabBarCallbacks {
	return port.TabBarCallbacks{
		OnTabSelected: func(index int) {
			if !a.tree.Contains(node) {
				return
			}
			node.SetActiveTabIndex(index)
			a.emitActivated(node)
		},
		OnTabCloseRequested: func(id entity.PanelID) {
			a.ClosePanel(id)
		},
		OnTabDragStart: func(id entity.PanelID, pos entity.Vec2) {
			if panel := a.tree.FindPanel(id); panel != nil {
				a.BeginPanelDrag(panel, pos)
			}
		},
	}
}

// SetTabBarFactory replaces the tab bar factory. Cached bars are dropped
// and rebuilt from the new factory on the next frame.
func (a *Area) SetTabBarFactory(f port.TabBarFactory) {
	a.tabBarFactory = f
	clear(a.tabBars)
	a.logger.Debug().Msg("replaced tab bar factory")
}

// TabBarCount returns the number of cached tab bars.
func (a *Area) TabBarCount() int { return len(a.tabBars) }
