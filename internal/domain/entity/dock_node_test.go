package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanels(t *testing.T, titles ...string) []*Panel {
	t.Helper()
	ids := NewPanelIDSource()
	panels := make([]*Panel, len(titles))
	for i, title := range titles {
		panels[i] = NewPanel(ids, title)
	}
	return panels
}

func TestNode_Factories(t *testing.T) {
	tabs := NewTabsNode(1)
	assert.True(t, tabs.IsTabs())
	assert.False(t, tabs.IsSplit())
	assert.True(t, tabs.IsEmpty())
	assert.Equal(t, 0, tabs.ActiveTabIndex())

	split := NewSplitNode(2, SplitVertical)
	assert.True(t, split.IsSplit())
	assert.False(t, split.IsEmpty())
	assert.Equal(t, SplitVertical, split.SplitDirection())
	assert.InDelta(t, 0.5, split.SplitRatio(), 1e-9)

	var zero Node
	assert.False(t, zero.IsSplit())
	assert.False(t, zero.IsTabs())
}

func TestNode_SetSplitRatio_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "far below", input: -5, want: MinSplitRatio},
		{name: "far above", input: 99, want: MaxSplitRatio},
		{name: "lower bound", input: 0.1, want: 0.1},
		{name: "upper bound", input: 0.9, want: 0.9},
		{name: "inside", input: 0.37, want: 0.37},
		{name: "NaN keeps current", input: math.NaN(), want: defaultSplitRatio},
		{name: "positive infinity", input: math.Inf(1), want: MaxSplitRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewSplitNode(1, SplitHorizontal)
			n.SetSplitRatio(tt.input)
			assert.InDelta(t, tt.want, n.SplitRatio(), 1e-9)
		})
	}
}

func TestNode_SetSplitRatio_IgnoredOnTabs(t *testing.T) {
	n := NewTabsNode(1)
	n.SetSplitRatio(0.7)
	assert.Zero(t, n.SplitRatio())
}

func TestNode_TabActiveIndexRules(t *testing.T) {
	p := newTestPanels(t, "a", "b", "c", "d")
	n := NewTabsNode(1)

	n.AddPanel(p[0])
	assert.Equal(t, 0, n.ActiveTabIndex(), "first panel activates index 0")
	assert.Same(t, n, p[0].Owner())

	n.AddPanel(p[1])
	n.SetActiveTabIndex(1)
	require.Same(t, p[1], n.ActivePanel())

	// Inserting before the active tab keeps the same panel visible.
	n.InsertPanel(p[2], 0)
	assert.Equal(t, 2, n.ActiveTabIndex())
	assert.Same(t, p[1], n.ActivePanel())

	// Inserting after it leaves the index alone.
	n.InsertPanel(p[3], 99)
	assert.Equal(t, 2, n.ActiveTabIndex())
	assert.Equal(t, []*Panel{p[2], p[0], p[1], p[3]}, n.Panels())

	// Removing the last tab while it is active clamps.
	n.SetActiveTabIndex(3)
	removed := n.RemovePanelAt(3)
	assert.Same(t, p[3], removed)
	assert.Nil(t, removed.Owner())
	assert.Equal(t, 2, n.ActiveTabIndex())

	for n.PanelCount() > 0 {
		n.RemovePanelAt(0)
		if n.PanelCount() > 0 {
			assert.Less(t, n.ActiveTabIndex(), n.PanelCount())
		}
	}
	assert.Equal(t, 0, n.ActiveTabIndex())
	assert.True(t, n.IsEmpty())
}

func TestNode_InsertIntoEmptyKeepsIndexZero(t *testing.T) {
	p := newTestPanels(t, "a")
	n := NewTabsNode(1)
	n.InsertPanel(p[0], 0)
	assert.Equal(t, 0, n.ActiveTabIndex())
	assert.Same(t, p[0], n.ActivePanel())
}

func TestNode_AddPanel_IgnoresOwnedPanel(t *testing.T) {
	tests := []struct {
		name string
		add  func(a, b *Node, p *Panel)
	}{
		{name: "insert into another node", add: func(_, b *Node, p *Panel) { b.InsertPanel(p, 0) }},
		{name: "append to another node", add: func(_, b *Node, p *Panel) { b.AddPanel(p) }},
		{name: "append to the owner again", add: func(a, _ *Node, p *Panel) { a.AddPanel(p) }},
		{name: "insert into the owner again", add: func(a, _ *Node, p *Panel) { a.InsertPanel(p, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			split := tree.NewSplit(SplitHorizontal)
			a, b := tree.NewTabs(), tree.NewTabs()
			split.SetFirst(a)
			split.SetSecond(b)
			tree.SetRoot(split)
			p := newTestPanels(t, "x")[0]
			a.AddPanel(p)

			tt.add(a, b, p)

			assert.Equal(t, 1, a.PanelCount())
			assert.Zero(t, b.PanelCount())
			assert.Same(t, a, p.Owner())

			// Detached first, the panel can move.
			a.RemovePanel(p)
			b.InsertPanel(p, 0)
			assert.Same(t, b, p.Owner())
			assert.Equal(t, 1, b.PanelCount())
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestNode_SetActiveTabIndex_Clamps(t *testing.T) {
	p := newTestPanels(t, "a", "b")
	n := NewTabsNode(1)

	n.SetActiveTabIndex(5)
	assert.Equal(t, 0, n.ActiveTabIndex())

	n.AddPanel(p[0])
	n.AddPanel(p[1])
	n.SetActiveTabIndex(5)
	assert.Equal(t, 1, n.ActiveTabIndex())
	n.SetActiveTabIndex(-3)
	assert.Equal(t, 0, n.ActiveTabIndex())
}

func TestNode_PanelLookups(t *testing.T) {
	p := newTestPanels(t, "a", "b", "stranger")
	n := NewTabsNode(1)
	n.AddPanel(p[0])
	n.AddPanel(p[1])

	assert.Equal(t, 1, n.FindPanelIndex(p[1]))
	assert.Equal(t, -1, n.FindPanelIndex(p[2]))
	assert.Same(t, p[0], n.FindPanel(p[0].ID()))
	assert.Nil(t, n.FindPanel(p[2].ID()))
	assert.Nil(t, n.RemovePanel(p[2]))
	assert.Nil(t, n.RemovePanelAt(7))

	split := NewSplitNode(2, SplitHorizontal)
	split.AddPanel(p[2])
	assert.Nil(t, p[2].Owner())
	assert.Equal(t, -1, split.FindPanelIndex(p[2]))
	assert.Nil(t, split.Panels())
}

func TestNode_SetChildPropagatesTree(t *testing.T) {
	tree := NewTree()
	root := tree.NewSplit(SplitHorizontal)
	tree.SetRoot(root)

	// Build a detached subtree two levels deep, then attach it.
	inner := tree.NewSplit(SplitVertical)
	deep := tree.NewTabs()
	inner.SetFirst(deep)
	inner.SetSecond(tree.NewTabs())
	assert.Nil(t, deep.Tree())

	root.SetFirst(inner)
	root.SetSecond(tree.NewTabs())

	assert.Same(t, tree, deep.Tree())
	assert.Same(t, root, inner.Parent())
	assert.Same(t, inner, deep.Parent())
	require.NoError(t, tree.Validate())

	detached := root.DetachFirst()
	assert.Same(t, inner, detached)
	assert.Nil(t, detached.Parent())
	assert.Nil(t, deep.Tree())
	assert.Nil(t, root.First())
}

func TestNode_ReplaceAndDetachChild(t *testing.T) {
	split := NewSplitNode(1, SplitHorizontal)
	a, b, c := NewTabsNode(2), NewTabsNode(3), NewTabsNode(4)
	split.SetFirst(a)
	split.SetSecond(b)

	assert.False(t, b.IsFirstChild())
	assert.True(t, a.IsFirstChild())
	assert.Same(t, b, a.Sibling())
	assert.Same(t, a, b.Sibling())

	assert.True(t, split.ReplaceChild(b, c))
	assert.Nil(t, b.Parent())
	assert.Same(t, split, c.Parent())
	assert.False(t, split.ReplaceChild(b, c))

	assert.True(t, split.DetachChild(a))
	assert.Nil(t, split.First())
	assert.False(t, split.DetachChild(a))
}

func TestNode_LayoutHorizontal(t *testing.T) {
	p := newTestPanels(t, "left", "right", "hidden")
	split := NewSplitNode(1, SplitHorizontal)
	left, right := NewTabsNode(2), NewTabsNode(3)
	left.AddPanel(p[0])
	right.AddPanel(p[1])
	right.AddPanel(p[2])
	split.SetFirst(left)
	split.SetSecond(right)
	split.SetSplitRatio(0.25)
	split.SetBounds(Rect{X: 0, Y: 0, W: 404, H: 200})

	split.Layout(4, 24)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 200}, left.Bounds())
	assert.Equal(t, Rect{X: 104, Y: 0, W: 300, H: 200}, right.Bounds())
	assert.Equal(t, Rect{X: 104, Y: 24, W: 300, H: 176}, right.ContentBounds())
	// Hidden tabs get the content rect too.
	assert.Equal(t, right.ContentBounds(), p[2].Bounds())
	assert.Equal(t, Rect{X: 100, Y: 0, W: 4, H: 200}, split.SplitterBounds(4))
}

func TestNode_LayoutVertical(t *testing.T) {
	split := NewSplitNode(1, SplitVertical)
	top, bottom := NewTabsNode(2), NewTabsNode(3)
	split.SetFirst(top)
	split.SetSecond(bottom)
	split.SetBounds(Rect{X: 10, Y: 20, W: 100, H: 104})

	split.Layout(4, 24)

	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 50}, top.Bounds())
	assert.Equal(t, Rect{X: 10, Y: 74, W: 100, H: 50}, bottom.Bounds())
	assert.Equal(t, Rect{X: 10, Y: 70, W: 100, H: 4}, split.SplitterBounds(4))
}

func TestNode_LayoutSkipsMalformedSplit(t *testing.T) {
	split := NewSplitNode(1, SplitHorizontal)
	only := NewTabsNode(2)
	split.SetFirst(only)
	split.SetBounds(Rect{W: 100, H: 100})

	assert.NotPanics(t, func() { split.Layout(4, 24) })
	assert.Equal(t, Rect{}, only.Bounds())
}

func TestNode_HitTestSplitter(t *testing.T) {
	split := NewSplitNode(1, SplitHorizontal)
	split.SetFirst(NewTabsNode(2))
	split.SetSecond(NewTabsNode(3))
	split.SetBounds(Rect{W: 404, H: 100})

	// Divider spans x in [198, 206) for tolerance 4.
	assert.True(t, split.HitTestSplitter(200, 50, 4))
	assert.True(t, split.HitTestSplitter(198, 50, 4))
	assert.False(t, split.HitTestSplitter(190, 50, 4))
	assert.False(t, split.HitTestSplitter(200, 150, 4))
	assert.False(t, NewTabsNode(4).HitTestSplitter(0, 0, 4))
}

func TestNode_Traversal(t *testing.T) {
	p := newTestPanels(t, "a", "b", "c")
	root := NewSplitNode(1, SplitHorizontal)
	left := NewTabsNode(2)
	inner := NewSplitNode(3, SplitVertical)
	top, bottom := NewTabsNode(4), NewTabsNode(5)
	left.AddPanel(p[0])
	top.AddPanel(p[1])
	bottom.AddPanel(p[2])
	inner.SetFirst(top)
	inner.SetSecond(bottom)
	root.SetFirst(left)
	root.SetSecond(inner)

	var preorder []NodeID
	root.ForEachNode(func(n *Node) { preorder = append(preorder, n.ID()) })
	assert.Equal(t, []NodeID{1, 2, 3, 4, 5}, preorder)

	var leaves []NodeID
	root.ForEachLeaf(func(n *Node) { leaves = append(leaves, n.ID()) })
	assert.Equal(t, []NodeID{2, 4, 5}, leaves)

	assert.Same(t, left, root.FirstLeaf())
	assert.Same(t, top, inner.FirstLeaf())
	assert.Same(t, bottom, root.FindNode(5))
	assert.Nil(t, root.FindNode(42))
	assert.Same(t, top, root.FindNodeContainingPanel(p[1].ID()))
	assert.Nil(t, root.FindNodeContainingPanel(999))
	assert.Equal(t, 2, bottom.Depth())
	assert.Equal(t, 0, root.Depth())
	assert.Nil(t, root.Sibling())
}

func TestNode_String(t *testing.T) {
	p := newTestPanels(t, "Inspector", "Scene")
	root := NewSplitNode(1, SplitHorizontal)
	left := NewTabsNode(2)
	right := NewTabsNode(3)
	right.AddPanel(p[0])
	right.AddPanel(p[1])
	root.SetFirst(left)
	root.SetSecond(right)
	root.SetSplitRatio(0.3)

	want := "split#1 horizontal ratio=0.30\n" +
		"  tabs#2 []\n" +
		"  tabs#3 [Inspector* Scene]\n"
	assert.Equal(t, want, root.String())
}
