package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("disabled", "console")
	return logging.WithContext(context.Background(), logger)
}

type dockFixture struct {
	ctx  context.Context
	uc   *usecase.ManageDockUseCase
	tree *entity.Tree
	ids  *entity.PanelIDSource
}

func newDockFixture() *dockFixture {
	return &dockFixture{
		ctx:  testContext(),
		uc:   usecase.NewManageDockUseCase(),
		tree: entity.NewTree(),
		ids:  entity.NewPanelIDSource(),
	}
}

func (f *dockFixture) panel(title string) *entity.Panel {
	return entity.NewPanel(f.ids, title)
}

func (f *dockFixture) add(t *testing.T, p *entity.Panel, zone entity.DropZone, target *entity.Node) *entity.Node {
	t.Helper()
	node := f.uc.AddPanel(f.ctx, f.tree, p, zone, target, usecase.DefaultDockRatio)
	require.NotNil(t, node)
	require.NoError(t, f.tree.Validate())
	return node
}

func TestManageDock_AddPanel_EmptyTreeCreatesTabsRoot(t *testing.T) {
	f := newDockFixture()
	p1 := f.panel("P1")

	node := f.add(t, p1, entity.DropZoneCenter, nil)

	root := f.tree.Root()
	require.NotNil(t, root)
	assert.Same(t, root, node)
	assert.True(t, root.IsTabs())
	assert.Equal(t, []*entity.Panel{p1}, root.Panels())
	assert.Equal(t, 0, root.ActiveTabIndex())
	assert.Same(t, root, p1.Owner())
}

func TestManageDock_AddPanel_LeftSplitsRoot(t *testing.T) {
	f := newDockFixture()
	p1, p2 := f.panel("P1"), f.panel("P2")
	original := f.add(t, p1, entity.DropZoneCenter, nil)

	node := f.add(t, p2, entity.DropZoneLeft, f.tree.Root())

	root := f.tree.Root()
	require.True(t, root.IsSplit())
	assert.Equal(t, entity.SplitHorizontal, root.SplitDirection())
	assert.InDelta(t, 0.3, root.SplitRatio(), 1e-9)
	assert.Same(t, node, root.First())
	assert.Equal(t, []*entity.Panel{p2}, root.First().Panels())
	assert.Same(t, original, root.Second())
	assert.Equal(t, []*entity.Panel{p1}, root.Second().Panels())
}

func TestManageDock_AddPanel_SecondSideInvertsRatio(t *testing.T) {
	tests := []struct {
		zone      entity.DropZone
		direction entity.SplitDirection
		ratio     float64
		newFirst  bool
	}{
		{entity.DropZoneLeft, entity.SplitHorizontal, 0.3, true},
		{entity.DropZoneRight, entity.SplitHorizontal, 0.7, false},
		{entity.DropZoneTop, entity.SplitVertical, 0.3, true},
		{entity.DropZoneBottom, entity.SplitVertical, 0.7, false},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			f := newDockFixture()
			f.add(t, f.panel("base"), entity.DropZoneCenter, nil)

			node := f.add(t, f.panel("new"), tt.zone, nil)

			root := f.tree.Root()
			assert.Equal(t, tt.direction, root.SplitDirection())
			assert.InDelta(t, tt.ratio, root.SplitRatio(), 1e-9)
			assert.Equal(t, tt.newFirst, node.IsFirstChild())
		})
	}
}

func TestManageDock_AddPanel_UnusableRatioUsesDefault(t *testing.T) {
	for _, ratio := range []float64{0, -1, math.NaN()} {
		f := newDockFixture()
		f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)

		node := f.uc.AddPanel(f.ctx, f.tree, f.panel("P2"), entity.DropZoneLeft, nil, ratio)

		require.NotNil(t, node)
		assert.InDelta(t, usecase.DefaultDockRatio, f.tree.Root().SplitRatio(), 1e-9)
		require.NoError(t, f.tree.Validate())
	}
}

func TestManageDock_AddPanel_CenterOnSplitUsesFirstLeaf(t *testing.T) {
	f := newDockFixture()
	f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)
	left := f.add(t, f.panel("P2"), entity.DropZoneLeft, nil)

	p3 := f.panel("P3")
	node := f.add(t, p3, entity.DropZoneNone, f.tree.Root())

	assert.Same(t, left, node)
	assert.Equal(t, 2, left.PanelCount())
}

func TestManageDock_AddPanel_ForeignTargetDefaultsToRoot(t *testing.T) {
	f := newDockFixture()
	root := f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)
	stranger := entity.NewTabsNode(99)

	node := f.add(t, f.panel("P2"), entity.DropZoneCenter, stranger)

	assert.Same(t, root, node)
	assert.True(t, stranger.IsEmpty())
}

func TestManageDock_AddPanel_RejectsDockedPanel(t *testing.T) {
	f := newDockFixture()
	p1 := f.panel("P1")
	f.add(t, p1, entity.DropZoneCenter, nil)

	assert.Nil(t, f.uc.AddPanel(f.ctx, f.tree, p1, entity.DropZoneLeft, nil, 0.3))
	assert.Nil(t, f.uc.AddPanel(f.ctx, f.tree, nil, entity.DropZoneLeft, nil, 0.3))
	assert.Equal(t, 1, f.tree.NodeCount())
}

func TestManageDock_SplitNode_NonRootKeepsSlot(t *testing.T) {
	f := newDockFixture()
	f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)
	right := f.add(t, f.panel("P2"), entity.DropZoneRight, nil)
	root := f.tree.Root()

	leaf := f.uc.SplitNode(f.ctx, f.tree, right, entity.SplitVertical, 0.4, false)
	require.NotNil(t, leaf)
	require.NoError(t, f.tree.Validate())

	inner := root.Second()
	assert.Same(t, f.tree.Root(), root)
	assert.True(t, inner.IsSplit())
	assert.Same(t, right, inner.First())
	assert.Same(t, leaf, inner.Second())
	assert.InDelta(t, 0.6, inner.SplitRatio(), 1e-9)
	assert.Same(t, f.tree, leaf.Tree())
}

func TestManageDock_SplitNode_RejectsForeignNode(t *testing.T) {
	f := newDockFixture()
	f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)

	assert.Nil(t, f.uc.SplitNode(f.ctx, f.tree, entity.NewTabsNode(50), entity.SplitVertical, 0.5, true))
	assert.Nil(t, f.uc.SplitNode(f.ctx, f.tree, nil, entity.SplitVertical, 0.5, true))
}

func TestManageDock_RemovePanel_RoundTripEmptiesTree(t *testing.T) {
	f := newDockFixture()
	p1 := f.panel("P1")
	f.add(t, p1, entity.DropZoneCenter, nil)

	removed, merge := f.uc.RemovePanel(f.ctx, f.tree, p1.ID())

	assert.Same(t, p1, removed)
	assert.Nil(t, p1.Owner())
	assert.True(t, f.tree.IsEmpty())
	assert.Len(t, merge.Removed, 1)
	assert.Equal(t, entity.InvalidNodeID, merge.Remaining)
}

func TestManageDock_RemovePanel_CollapsesSplit(t *testing.T) {
	f := newDockFixture()
	p1, p2 := f.panel("P1"), f.panel("P2")
	original := f.add(t, p1, entity.DropZoneCenter, nil)
	left := f.add(t, p2, entity.DropZoneLeft, nil)
	split := f.tree.Root()

	_, merge := f.uc.RemovePanel(f.ctx, f.tree, p2.ID())

	root := f.tree.Root()
	assert.Same(t, original, root)
	assert.True(t, root.IsTabs())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*entity.Panel{p1}, root.Panels())
	assert.ElementsMatch(t, []entity.NodeID{left.ID(), split.ID()}, merge.Removed)
	assert.Equal(t, original.ID(), merge.Remaining)
	require.NoError(t, f.tree.Validate())
}

func TestManageDock_RemovePanel_PromotesIntoGrandparent(t *testing.T) {
	f := newDockFixture()
	a := f.add(t, f.panel("A"), entity.DropZoneCenter, nil)
	pb := f.panel("B")
	b := f.add(t, pb, entity.DropZoneRight, nil)
	c := f.add(t, f.panel("C"), entity.DropZoneBottom, b)
	root := f.tree.Root()

	// root(split: A | inner(split: B / C)); removing B promotes C.
	_, merge := f.uc.RemovePanel(f.ctx, f.tree, pb.ID())

	assert.Equal(t, c.ID(), merge.Remaining)
	assert.Same(t, root, f.tree.Root())
	assert.Same(t, a, root.First())
	assert.Same(t, c, root.Second())
	assert.Same(t, root, c.Parent())
	require.NoError(t, f.tree.Validate())
}

func TestManageDock_RemovePanel_UnknownIsNoop(t *testing.T) {
	f := newDockFixture()
	f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)

	p, merge := f.uc.RemovePanel(f.ctx, f.tree, 404)
	assert.Nil(t, p)
	assert.False(t, merge.Merged())
	assert.Equal(t, 1, f.tree.NodeCount())
}

func TestManageDock_TryMergeNode_IgnoresNonEmpty(t *testing.T) {
	f := newDockFixture()
	root := f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)

	assert.Zero(t, f.uc.TryMergeNode(f.ctx, f.tree, root))
	assert.Same(t, root, f.tree.Root())
}

func TestManageDock_MovePanel(t *testing.T) {
	t.Run("center into another leaf collapses the source", func(t *testing.T) {
		f := newDockFixture()
		p1, p2 := f.panel("P1"), f.panel("P2")
		right := f.add(t, p1, entity.DropZoneCenter, nil)
		f.add(t, p2, entity.DropZoneLeft, nil)

		result, ok := f.uc.MovePanel(f.ctx, f.tree, p2, entity.DropTarget{
			Zone:   entity.DropZoneCenter,
			Target: right,
		})

		require.True(t, ok)
		assert.Same(t, right, f.tree.Root())
		assert.Same(t, right, result.Destination)
		assert.Equal(t, []*entity.Panel{p1, p2}, right.Panels())
		assert.Len(t, result.Merge.Removed, 2)
		assert.Equal(t, right.ID(), result.Merge.Remaining)
		require.NoError(t, f.tree.Validate())
	})

	t.Run("edge of its own single-panel leaf keeps the panel", func(t *testing.T) {
		f := newDockFixture()
		p1, p2 := f.panel("P1"), f.panel("P2")
		f.add(t, p1, entity.DropZoneCenter, nil)
		left := f.add(t, p2, entity.DropZoneLeft, nil)

		_, ok := f.uc.MovePanel(f.ctx, f.tree, p2, entity.DropTarget{
			Zone:       entity.DropZoneTop,
			Target:     left,
			SplitRatio: 0.5,
		})

		require.True(t, ok)
		require.NoError(t, f.tree.Validate())
		assert.Len(t, f.tree.AllPanels(), 2)
		assert.NotNil(t, p2.Owner())
		assert.Equal(t, 2, f.tree.LeafCount())
	})

	t.Run("edge split in another leaf", func(t *testing.T) {
		f := newDockFixture()
		p1, p2, p3 := f.panel("P1"), f.panel("P2"), f.panel("P3")
		root := f.add(t, p1, entity.DropZoneCenter, nil)
		f.add(t, p2, entity.DropZoneCenter, nil)
		f.add(t, p3, entity.DropZoneCenter, nil)

		_, ok := f.uc.MovePanel(f.ctx, f.tree, p3, entity.DropTarget{
			Zone:       entity.DropZoneBottom,
			Target:     root,
			SplitRatio: 0.25,
		})

		require.True(t, ok)
		split := f.tree.Root()
		require.True(t, split.IsSplit())
		assert.Equal(t, entity.SplitVertical, split.SplitDirection())
		assert.InDelta(t, 0.75, split.SplitRatio(), 1e-9)
		assert.Equal(t, []*entity.Panel{p1, p2}, split.First().Panels())
		assert.Equal(t, []*entity.Panel{p3}, split.Second().Panels())
	})

	t.Run("nil target defaults to root", func(t *testing.T) {
		f := newDockFixture()
		p1, p2 := f.panel("P1"), f.panel("P2")
		f.add(t, p1, entity.DropZoneCenter, nil)
		f.add(t, p2, entity.DropZoneCenter, nil)

		_, ok := f.uc.MovePanel(f.ctx, f.tree, p2, entity.DropTarget{Zone: entity.DropZoneRight})

		require.True(t, ok)
		assert.InDelta(t, 1-usecase.DefaultDockRatio, f.tree.Root().SplitRatio(), 1e-9)
	})

	t.Run("rejected moves leave the tree untouched", func(t *testing.T) {
		f := newDockFixture()
		p1 := f.panel("P1")
		root := f.add(t, p1, entity.DropZoneCenter, nil)
		before := f.tree.String()

		_, ok := f.uc.MovePanel(f.ctx, f.tree, p1, entity.DropTarget{Zone: entity.DropZoneNone, Target: root})
		assert.False(t, ok)

		stray := f.panel("stray")
		_, ok = f.uc.MovePanel(f.ctx, f.tree, stray, entity.DropTarget{Zone: entity.DropZoneCenter, Target: root})
		assert.False(t, ok)

		_, ok = f.uc.MovePanel(f.ctx, f.tree, nil, entity.DropTarget{Zone: entity.DropZoneCenter})
		assert.False(t, ok)

		assert.Equal(t, before, f.tree.String())
		assert.Same(t, root, p1.Owner())
	})
}

func TestManageDock_SetSplitRatio(t *testing.T) {
	f := newDockFixture()
	leaf := f.add(t, f.panel("P1"), entity.DropZoneCenter, nil)
	f.add(t, f.panel("P2"), entity.DropZoneLeft, nil)
	root := f.tree.Root()

	assert.True(t, f.uc.SetSplitRatio(f.ctx, f.tree, root.ID(), -5))
	assert.InDelta(t, entity.MinSplitRatio, root.SplitRatio(), 1e-9)
	assert.True(t, f.uc.SetSplitRatio(f.ctx, f.tree, root.ID(), 99))
	assert.InDelta(t, entity.MaxSplitRatio, root.SplitRatio(), 1e-9)
	assert.True(t, f.uc.SetSplitRatio(f.ctx, f.tree, root.ID(), math.NaN()))
	assert.InDelta(t, entity.MaxSplitRatio, root.SplitRatio(), 1e-9)
	require.NoError(t, f.tree.Validate())

	assert.False(t, f.uc.SetSplitRatio(f.ctx, f.tree, leaf.ID(), 0.5))
	assert.False(t, f.uc.SetSplitRatio(f.ctx, f.tree, 404, 0.5))
}

func TestManageDock_SplitterRatioAt(t *testing.T) {
	uc := usecase.NewManageDockUseCase()

	horizontal := entity.NewSplitNode(1, entity.SplitHorizontal)
	horizontal.SetBounds(entity.Rect{X: 0, Y: 0, W: 400, H: 300})

	tests := []struct {
		name    string
		node    *entity.Node
		cursor  entity.Vec2
		minSize entity.Vec2
		want    float64
	}{
		{
			name:   "absolute midpoint",
			node:   horizontal,
			cursor: entity.Vec2{X: 200, Y: 10},
			want:   0.5,
		},
		{
			name:   "far left clamps to min ratio",
			node:   horizontal,
			cursor: entity.Vec2{X: -100, Y: 10},
			want:   entity.MinSplitRatio,
		},
		{
			name:    "min panel size tightens the clamp",
			node:    horizontal,
			cursor:  entity.Vec2{X: 380, Y: 10},
			minSize: entity.Vec2{X: 100, Y: 100},
			want:    0.75,
		},
		{
			name:    "oversized min panel size is ignored",
			node:    horizontal,
			cursor:  entity.Vec2{X: 300, Y: 10},
			minSize: entity.Vec2{X: 300, Y: 300},
			want:    0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.SplitterRatioAt(tt.node, tt.cursor, tt.minSize)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	vertical := entity.NewSplitNode(2, entity.SplitVertical)
	vertical.SetBounds(entity.Rect{X: 0, Y: 100, W: 50, H: 200})
	assert.InDelta(t, 0.25, uc.SplitterRatioAt(vertical, entity.Vec2{Y: 150}, entity.Vec2{}), 1e-9)

	assert.Zero(t, uc.SplitterRatioAt(entity.NewTabsNode(3), entity.Vec2{}, entity.Vec2{}))

	horizontal.SetSplitRatio(0.4)
	assert.InDelta(t, 0.4, uc.SplitterRatioAt(horizontal, entity.Vec2{X: math.NaN()}, entity.Vec2{}), 1e-9)
}
