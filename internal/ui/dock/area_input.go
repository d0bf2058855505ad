package dock

import (
	"github.com/bnema/dockyard/internal/domain/entity"
)

// OnMouseDown handles a button press. Only the left button is handled.
// Returns true when the area consumed the event.
func (a *Area) OnMouseDown(event entity.MouseEvent) bool {
	if event.Button != entity.MouseButtonLeft {
		return false
	}
	if a.detector.IsDragging() {
		return true
	}

	if node := a.HitTestSplitter(event.X, event.Y); node != nil {
		a.draggedSplitter = node
		a.logger.Debug().
			Uint32("node_id", uint32(node.ID())).
			Float64("ratio", node.SplitRatio()).
			Msg("splitter drag started")
		return true
	}

	pos := event.Pos()
	consumed := false
	a.forEachTabBar(func(leaf *entity.Node, strip entity.Rect, bar tabBarInput) {
		if strip.Contains(pos) && bar.OnMouseDown(event) {
			consumed = true
		}
	})
	return consumed
}

// OnMouseUp handles a button release. Releasing during a panel drag drops
// the panel on the detected zone; releasing during a splitter drag ends it.
func (a *Area) OnMouseUp(event entity.MouseEvent) bool {
	if event.Button != entity.MouseButtonLeft {
		return false
	}

	if a.detector.IsDragging() {
		a.drop()
		return true
	}

	if a.draggedSplitter != nil {
		a.logger.Debug().
			Uint32("node_id", uint32(a.draggedSplitter.ID())).
			Float64("ratio", a.draggedSplitter.SplitRatio()).
			Msg("splitter drag ended")
		a.draggedSplitter = nil
		return true
	}

	consumed := false
	a.forEachTabBar(func(_ *entity.Node, _ entity.Rect, bar tabBarInput) {
		if bar.OnMouseUp(event) {
			consumed = true
		}
	})
	return consumed
}

// OnMouseMove handles pointer motion. During a splitter drag the ratio is
// recomputed from the absolute cursor position on every event.
func (a *Area) OnMouseMove(event entity.MouseEvent) bool {
	pos := event.Pos()
	a.lastMouse = pos

	if a.detector.IsDragging() {
		a.updateDrag(pos)
		return true
	}

	if a.draggedSplitter != nil {
		a.dragSplitter(pos)
		return true
	}

	consumed := false
	a.forEachTabBar(func(_ *entity.Node, _ entity.Rect, bar tabBarInput) {
		if bar.OnMouseMove(event) {
			consumed = true
		}
	})

	// A tab bar may have started a panel drag from this very move.
	if a.detector.IsDragging() {
		a.updateDrag(pos)
		return true
	}
	return consumed
}

// HitTestSplitter returns the first split in preorder whose splitter lies
// under (x, y), nil when none does.
func (a *Area) HitTestSplitter(x, y float64) *entity.Node {
	if a.tree.IsEmpty() {
		return nil
	}

	var hit *entity.Node
	a.tree.Root().ForEachNode(func(node *entity.Node) {
		if hit == nil && node.IsSplit() && node.HitTestSplitter(x, y, a.settings.SplitterThickness) {
			hit = node
		}
	})
	return hit
}

// BeginPanelDrag starts dragging a docked panel. Any splitter drag is
// abandoned. Panels from another area are ignored.
func (a *Area) BeginPanelDrag(panel *entity.Panel, pos entity.Vec2) bool {
	if panel == nil || panel.Tree() != a.tree {
		return false
	}

	a.draggedSplitter = nil
	a.detector.BeginDrag(panel, pos)

	a.logger.Debug().
		Uint32("panel_id", uint32(panel.ID())).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("panel drag started")
	a.emit(entity.DragStartEvent{PanelID: panel.ID(), Position: pos})
	return true
}

// CancelPanelDrag aborts a panel drag. The tree is left untouched.
func (a *Area) CancelPanelDrag() {
	if !a.detector.IsDragging() {
		return
	}

	panel := a.detector.DraggedPanel()
	a.detector.CancelDrag()
	a.resetTabBars()

	var id entity.PanelID
	if panel != nil {
		id = panel.ID()
	}
	a.logger.Debug().Uint32("panel_id", uint32(id)).Msg("panel drag cancelled")
	a.emit(entity.DragEndEvent{PanelID: id, Cancelled: true})
}

// IsDragging reports whether a panel drag is in progress.
func (a *Area) IsDragging() bool { return a.detector.IsDragging() }

// IsDraggingSplitter reports whether a splitter drag is in progress.
func (a *Area) IsDraggingSplitter() bool { return a.draggedSplitter != nil }

// DraggedSplitter returns the split whose splitter is being dragged.
func (a *Area) DraggedSplitter() *entity.Node { return a.draggedSplitter }

// LastMousePosition returns the position of the last move event.
func (a *Area) LastMousePosition() entity.Vec2 { return a.lastMouse }

func (a *Area) updateDrag(pos entity.Vec2) {
	a.detector.UpdateDrag(pos)

	target := a.detector.CurrentTarget()
	event := entity.DragUpdateEvent{Position: pos, Zone: target.Zone}
	if panel := a.detector.DraggedPanel(); panel != nil {
		event.PanelID = panel.ID()
	}
	if target.Target != nil {
		event.TargetNodeID = target.Target.ID()
	}
	a.emit(event)
}

func (a *Area) drop() {
	panel := a.detector.DraggedPanel()
	target := a.detector.EndDrag()

	end := entity.DragEndEvent{Zone: target.Zone}
	if panel != nil {
		end.PanelID = panel.ID()
	}
	if target.Target != nil {
		end.TargetNodeID = target.Target.ID()
	}

	if panel != nil && target.Zone != entity.DropZoneNone {
		if !a.MovePanel(panel, target) {
			a.logger.Debug().
				Uint32("panel_id", uint32(panel.ID())).
				Str("zone", target.Zone.String()).
				Msg("drop rejected")
		}
	}

	a.resetTabBars()
	a.emit(end)
}

func (a *Area) dragSplitter(pos entity.Vec2) {
	node := a.draggedSplitter
	if !a.tree.Contains(node) {
		a.draggedSplitter = nil
		return
	}

	old := node.SplitRatio()
	node.SetSplitRatio(a.uc.SplitterRatioAt(node, pos, a.settings.MinPanelSize))
	if node.SplitRatio() != old {
		a.emit(entity.SplitterChangedEvent{NodeID: node.ID(), OldRatio: old, NewRatio: node.SplitRatio()})
	}
}

// tabBarInput is the part of a tab bar the input router talks to.
type tabBarInput interface {
	OnMouseDown(event entity.MouseEvent) bool
	OnMouseUp(event entity.MouseEvent) bool
	OnMouseMove(event entity.MouseEvent) bool
}

// forEachTabBar visits the tab bar of every leaf, laid out on its strip.
// Leaves are snapshotted first because a callback may restructure the
// tree; leaves detached meanwhile are skipped.
func (a *Area) forEachTabBar(fn func(leaf *entity.Node, strip entity.Rect, bar tabBarInput)) {
	if a.tabBarFactory == nil {
		return
	}
	for _, leaf := range a.leaves() {
		if !a.tree.Contains(leaf) {
			continue
		}
		bar := a.tabBar(leaf)
		if bar == nil {
			continue
		}
		strip := leaf.TabBarBounds(a.settings.TabBarHeight)
		bar.Layout(strip)
		fn(leaf, strip, bar)
	}
}

func (a *Area) resetTabBars() {
	for _, bar := range a.tabBars {
		bar.Reset()
	}
}

func (a *Area) leaves() []*entity.Node {
	if a.tree.IsEmpty() {
		return nil
	}
	var out []*entity.Node
	a.tree.Root().ForEachLeaf(func(leaf *entity.Node) {
		out = append(out, leaf)
	})
	return out
}
