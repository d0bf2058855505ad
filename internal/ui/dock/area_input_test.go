package dock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
)

func left(x, y float64) entity.MouseEvent {
	return entity.MouseEvent{X: x, Y: y, Button: entity.MouseButtonLeft}
}

// splitArea builds a 400x300 area with P1 on the left and P2 docked right
// at ratio 0.3 for the left side.
func splitArea(t *testing.T, opts ...dock.Option) (*areaFixture, *entity.Panel, *entity.Panel) {
	t.Helper()
	f := newAreaFixture(opts...)
	p1, p2 := f.panel("P1"), f.panel("P2")
	f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.AddPanel(p2, entity.DropZoneRight, nil, 0.7)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()
	require.InDelta(t, 0.3, f.area.Root().SplitRatio(), 1e-9)
	return f, p1, p2
}

func TestArea_HitTestSplitter(t *testing.T) {
	f, _, _ := splitArea(t)
	root := f.area.Root()

	// Splitter hit box is 2*thickness wide starting at (400-8)*0.3.
	assert.Same(t, root, f.area.HitTestSplitter(120, 150))
	assert.Nil(t, f.area.HitTestSplitter(50, 150))
	assert.Nil(t, f.area.HitTestSplitter(300, 150))

	empty := newAreaFixture()
	assert.Nil(t, empty.area.HitTestSplitter(0, 0))
}

func TestArea_SplitterDragIsAbsolute(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
	}{
		{"grab left of center", 118},
		{"grab right of center", 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, _ := splitArea(t)
			root := f.area.Root()

			require.True(t, f.area.OnMouseDown(left(tt.startX, 150)))
			require.True(t, f.area.IsDraggingSplitter())
			assert.Same(t, root, f.area.DraggedSplitter())

			require.True(t, f.area.OnMouseMove(left(200, 150)))
			assert.InDelta(t, 0.5, root.SplitRatio(), 1e-9)

			require.True(t, f.area.OnMouseUp(left(200, 150)))
			assert.False(t, f.area.IsDraggingSplitter())
			assert.InDelta(t, 0.5, root.SplitRatio(), 1e-9)
		})
	}
}

func TestArea_SplitterDragRespectsMinPanelSize(t *testing.T) {
	f, _, _ := splitArea(t)
	root := f.area.Root()
	require.True(t, f.area.OnMouseDown(left(120, 150)))

	f.area.OnMouseMove(left(395, 150))
	assert.InDelta(t, 0.75, root.SplitRatio(), 1e-9, "300/400 keeps 100px on the right")

	f.area.OnMouseMove(left(-50, 150))
	assert.InDelta(t, 0.25, root.SplitRatio(), 1e-9)

	changed := eventsOfType[entity.SplitterChangedEvent](f.log)
	require.Len(t, changed, 2)
	assert.InDelta(t, 0.3, changed[0].OldRatio, 1e-9)
	assert.InDelta(t, 0.75, changed[0].NewRatio, 1e-9)
}

func TestArea_SplitterDragClampsToRatioRange(t *testing.T) {
	s := dock.DefaultSettings()
	s.MinPanelSize = entity.Vec2{}
	f, _, _ := splitArea(t, dock.WithSettings(s))
	root := f.area.Root()

	require.True(t, f.area.OnMouseDown(left(120, 150)))
	f.area.OnMouseMove(left(399, 150))

	assert.InDelta(t, entity.MaxSplitRatio, root.SplitRatio(), 1e-9)
}

func TestArea_IgnoresNonLeftButtons(t *testing.T) {
	f, _, _ := splitArea(t)

	right := entity.MouseEvent{X: 120, Y: 150, Button: entity.MouseButtonRight}
	assert.False(t, f.area.OnMouseDown(right))
	assert.False(t, f.area.IsDraggingSplitter())
	assert.False(t, f.area.OnMouseUp(right))
}

func TestArea_PanelDragDropsOnEdge(t *testing.T) {
	f := newAreaFixture()
	p1, p2 := f.panel("P1"), f.panel("P2")
	root := f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.AddPanel(p2, entity.DropZoneCenter, root, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()

	require.True(t, f.area.BeginPanelDrag(p2, entity.Vec2{X: 60, Y: 10}))
	assert.True(t, f.area.OnMouseDown(left(390, 150)), "press during a drag is swallowed")
	assert.True(t, f.area.OnMouseMove(left(390, 150)))

	target := f.area.Detector().CurrentTarget()
	assert.Equal(t, entity.DropZoneRight, target.Zone)
	assert.Same(t, root, target.Target)

	require.True(t, f.area.OnMouseUp(left(390, 150)))

	split := f.area.Root()
	require.True(t, split.IsSplit())
	assert.InDelta(t, 0.7, split.SplitRatio(), 1e-9)
	assert.Same(t, root, split.First())
	assert.Equal(t, []*entity.Panel{p1}, split.First().Panels())
	assert.Equal(t, []*entity.Panel{p2}, split.Second().Panels())
	assert.False(t, f.area.IsDragging())
	require.NoError(t, f.area.Tree().Validate())

	starts := eventsOfType[entity.DragStartEvent](f.log)
	require.Len(t, starts, 1)
	assert.Equal(t, p2.ID(), starts[0].PanelID)
	updates := eventsOfType[entity.DragUpdateEvent](f.log)
	require.Len(t, updates, 1)
	assert.Equal(t, entity.DropZoneRight, updates[0].Zone)
	assert.Equal(t, root.ID(), updates[0].TargetNodeID)
	ends := eventsOfType[entity.DragEndEvent](f.log)
	require.Len(t, ends, 1)
	assert.Equal(t, entity.DragEndEvent{PanelID: p2.ID(), Zone: entity.DropZoneRight, TargetNodeID: root.ID()}, ends[0])
}

func TestArea_PanelDragOutsideIsNoOp(t *testing.T) {
	f := newAreaFixture()
	p1 := f.panel("P1")
	f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()
	before := f.area.Tree().String()
	layouts := f.log.layouts

	f.area.BeginPanelDrag(p1, entity.Vec2{})
	f.area.OnMouseMove(left(900, 900))
	require.True(t, f.area.OnMouseUp(left(900, 900)))

	assert.Equal(t, before, f.area.Tree().String())
	assert.Equal(t, layouts, f.log.layouts)
	assert.False(t, f.area.IsDragging())
}

func TestArea_DragOwnNodeEdgeKeepsPanel(t *testing.T) {
	f := newAreaFixture()
	p1 := f.panel("P1")
	f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()

	f.area.BeginPanelDrag(p1, entity.Vec2{})
	f.area.OnMouseMove(left(5, 150))
	f.area.OnMouseUp(left(5, 150))

	require.NotNil(t, f.area.Root())
	assert.Same(t, p1, f.area.FindPanel(p1.ID()))
	assert.True(t, f.area.Root().IsTabs(), "the emptied source collapses back")
	require.NoError(t, f.area.Tree().Validate())
}

func TestArea_CancelPanelDrag(t *testing.T) {
	f := newAreaFixture()
	p1, p2 := f.panel("P1"), f.panel("P2")
	root := f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.AddPanel(p2, entity.DropZoneCenter, root, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()
	before := f.area.Tree().String()

	f.area.CancelPanelDrag()
	assert.Empty(t, eventsOfType[entity.DragEndEvent](f.log), "idle cancel is silent")

	f.area.BeginPanelDrag(p2, entity.Vec2{})
	f.area.OnMouseMove(left(5, 150))
	f.area.CancelPanelDrag()

	assert.False(t, f.area.IsDragging())
	assert.Equal(t, before, f.area.Tree().String())
	ends := eventsOfType[entity.DragEndEvent](f.log)
	require.Len(t, ends, 1)
	assert.True(t, ends[0].Cancelled)

	assert.False(t, f.area.OnMouseUp(left(5, 150)))
}

func TestArea_BeginPanelDragAbandonsSplitterDrag(t *testing.T) {
	f, p1, _ := splitArea(t)
	require.True(t, f.area.OnMouseDown(left(120, 150)))

	require.True(t, f.area.BeginPanelDrag(p1, entity.Vec2{X: 120, Y: 150}))

	assert.False(t, f.area.IsDraggingSplitter())
	assert.True(t, f.area.IsDragging())
	assert.False(t, f.area.BeginPanelDrag(nil, entity.Vec2{}))
}

// tabBarHarness wires a mock tab bar per Tabs node and keeps the callbacks
// the area registered on each.
type tabBarHarness struct {
	bars      map[entity.NodeID]*mocks.MockTabBar
	callbacks map[entity.NodeID]port.TabBarCallbacks
	factory   *mocks.MockTabBarFactory
}

func newTabBarHarness(t *testing.T) *tabBarHarness {
	h := &tabBarHarness{
		bars:      make(map[entity.NodeID]*mocks.MockTabBar),
		callbacks: make(map[entity.NodeID]port.TabBarCallbacks),
		factory:   mocks.NewMockTabBarFactory(t),
	}
	h.factory.EXPECT().NewTabBar(mock.Anything).RunAndReturn(func(node *entity.Node) port.TabBar {
		bar := mocks.NewMockTabBar(t)
		id := node.ID()
		bar.EXPECT().SetCallbacks(mock.Anything).Run(func(cb port.TabBarCallbacks) {
			h.callbacks[id] = cb
		}).Once()
		bar.EXPECT().Layout(mock.Anything).Maybe()
		bar.EXPECT().Reset().Maybe()
		h.bars[id] = bar
		return bar
	}).Maybe()
	return h
}

func TestArea_MouseDownForwardsToStripUnderPointer(t *testing.T) {
	h := newTabBarHarness(t)
	f, _, _ := splitArea(t, dock.WithTabBarFactory(h.factory))
	leftLeaf, rightLeaf := f.area.Root().First(), f.area.Root().Second()
	require.Len(t, h.bars, 2, "Layout creates a bar per leaf")

	h.bars[leftLeaf.ID()].EXPECT().OnMouseDown(left(20, 10)).Return(true).Once()

	assert.True(t, f.area.OnMouseDown(left(20, 10)))
	h.bars[rightLeaf.ID()].AssertNotCalled(t, "OnMouseDown", mock.Anything)

	// Below the strip nothing is forwarded.
	assert.False(t, f.area.OnMouseDown(left(20, 100)))
}

func TestArea_MoveAndUpForwardToEveryTabBar(t *testing.T) {
	h := newTabBarHarness(t)
	f, _, _ := splitArea(t, dock.WithTabBarFactory(h.factory))

	for _, bar := range h.bars {
		bar.EXPECT().OnMouseMove(left(50, 50)).Return(false).Once()
		bar.EXPECT().OnMouseUp(left(50, 50)).Return(false).Once()
	}

	assert.False(t, f.area.OnMouseMove(left(50, 50)))
	assert.False(t, f.area.OnMouseUp(left(50, 50)))
	assert.Equal(t, entity.Vec2{X: 50, Y: 50}, f.area.LastMousePosition())
}

func TestArea_TabSelectedActivatesPanel(t *testing.T) {
	h := newTabBarHarness(t)
	f := newAreaFixture(dock.WithTabBarFactory(h.factory))
	p1, p2 := f.panel("P1"), f.panel("P2")
	node := f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.AddPanel(p2, entity.DropZoneCenter, node, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()

	h.callbacks[node.ID()].OnTabSelected(1)

	assert.Equal(t, 1, node.ActiveTabIndex())
	assert.Equal(t, []entity.PanelID{p2.ID()}, f.log.activated)
	activated := eventsOfType[entity.PanelActivatedEvent](f.log)
	assert.Equal(t, []entity.PanelActivatedEvent{{PanelID: p2.ID(), NodeID: node.ID()}}, activated)
}

func TestArea_TabCloseRequestedClosesAndPurgesBar(t *testing.T) {
	h := newTabBarHarness(t)
	f, p1, p2 := splitArea(t, dock.WithTabBarFactory(h.factory))
	leftLeaf := f.area.Root().First()
	require.Equal(t, 2, f.area.TabBarCount())

	h.callbacks[leftLeaf.ID()].OnTabCloseRequested(p1.ID())

	assert.Equal(t, []entity.PanelID{p1.ID()}, f.log.closed)
	assert.Nil(t, f.area.FindPanel(p1.ID()))
	assert.Same(t, p2.Owner(), f.area.Root())
	assert.Equal(t, 1, f.area.TabBarCount())

	// Late signals from the discarded bar are ignored.
	h.callbacks[leftLeaf.ID()].OnTabSelected(0)
	assert.Empty(t, f.log.activated)
}

func TestArea_TabDragStartDuringMoveUpdatesDetector(t *testing.T) {
	h := newTabBarHarness(t)
	f := newAreaFixture(dock.WithTabBarFactory(h.factory))
	p1, p2 := f.panel("P1"), f.panel("P2")
	node := f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.AddPanel(p2, entity.DropZoneCenter, node, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()

	bar := h.bars[node.ID()]
	bar.EXPECT().OnMouseMove(mock.Anything).RunAndReturn(func(e entity.MouseEvent) bool {
		h.callbacks[node.ID()].OnTabDragStart(p2.ID(), e.Pos())
		return true
	}).Once()

	assert.True(t, f.area.OnMouseMove(left(390, 150)))

	require.True(t, f.area.IsDragging())
	assert.Same(t, p2, f.area.Detector().DraggedPanel())
	assert.Equal(t, entity.DropZoneRight, f.area.Detector().CurrentTarget().Zone)

	require.True(t, f.area.OnMouseUp(left(390, 150)))
	assert.True(t, f.area.Root().IsSplit())
}

func TestArea_SetTabBarFactoryRebuildsBars(t *testing.T) {
	first := newTabBarHarness(t)
	f, _, _ := splitArea(t, dock.WithTabBarFactory(first.factory))
	require.Equal(t, 2, f.area.TabBarCount())

	second := newTabBarHarness(t)
	f.area.SetTabBarFactory(second.factory)
	assert.Zero(t, f.area.TabBarCount())

	f.area.Layout()

	assert.Len(t, second.bars, 2)
	assert.Equal(t, 2, f.area.TabBarCount())
}
