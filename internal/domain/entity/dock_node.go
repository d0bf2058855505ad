package entity

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MinSplitRatio and MaxSplitRatio bound every split node's ratio.
	MinSplitRatio = 0.1
	MaxSplitRatio = 0.9

	defaultSplitRatio = 0.5
)

// nodeKind is the payload of a Node: exactly one of *SplitKind or *TabsKind.
type nodeKind interface {
	isNodeKind()
}

// SplitKind is the payload of a node dividing its bounds between two children.
// ratio always names the first child's share.
type SplitKind struct {
	direction SplitDirection
	ratio     float64
	first     *Node
	second    *Node
}

// TabsKind is the payload of a leaf holding an ordered list of panels.
type TabsKind struct {
	panels      []*Panel
	activeIndex int
}

func (*SplitKind) isNodeKind() {}
func (*TabsKind) isNodeKind()  {}

// Node is a node of the dock tree. It is either a Split with two children or a
// Tabs leaf with panels. Nodes are built through NewTabsNode and NewSplitNode
// only; a zero Node is neither.
type Node struct {
	id            NodeID
	kind          nodeKind
	bounds        Rect
	contentBounds Rect

	parent *Node // non-owning, nil for root
	tree   *Tree // non-owning, nil when detached
}

// NewTabsNode creates an empty Tabs leaf.
func NewTabsNode(id NodeID) *Node {
	return &Node{id: id, kind: &TabsKind{}}
}

// NewSplitNode creates a Split node without children and a 0.5 ratio.
func NewSplitNode(id NodeID, direction SplitDirection) *Node {
	return &Node{id: id, kind: &SplitKind{direction: direction, ratio: defaultSplitRatio}}
}

// ID returns the node id.
func (n *Node) ID() NodeID { return n.id }

// Parent returns the parent split node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Tree returns the tree this node is attached to, nil when detached.
func (n *Node) Tree() *Tree { return n.tree }

// Bounds returns the screen rectangle computed by the last layout pass.
func (n *Node) Bounds() Rect { return n.bounds }

// SetBounds assigns the node's screen rectangle.
func (n *Node) SetBounds(bounds Rect) { n.bounds = bounds }

// ContentBounds returns a Tabs node's rectangle below its tab bar.
func (n *Node) ContentBounds() Rect { return n.contentBounds }

// IsSplit returns true for split nodes.
func (n *Node) IsSplit() bool {
	_, ok := n.kind.(*SplitKind)
	return ok
}

// IsTabs returns true for tab leaves.
func (n *Node) IsTabs() bool {
	_, ok := n.kind.(*TabsKind)
	return ok
}

// IsEmpty returns true for a Tabs node without panels.
func (n *Node) IsEmpty() bool {
	t, ok := n.kind.(*TabsKind)
	return ok && len(t.panels) == 0
}

func (n *Node) split() *SplitKind {
	s, _ := n.kind.(*SplitKind)
	return s
}

func (n *Node) tabs() *TabsKind {
	t, _ := n.kind.(*TabsKind)
	return t
}

// =============================================================================
// Split properties and children
// =============================================================================

// SplitDirection returns the split axis. Tabs nodes report SplitHorizontal.
func (n *Node) SplitDirection() SplitDirection {
	if s := n.split(); s != nil {
		return s.direction
	}
	return SplitHorizontal
}

// SplitRatio returns the first child's share, 0 for Tabs nodes.
func (n *Node) SplitRatio() float64 {
	if s := n.split(); s != nil {
		return s.ratio
	}
	return 0
}

// SetSplitRatio clamps ratio into [MinSplitRatio, MaxSplitRatio]. NaN
// keeps the current ratio.
func (n *Node) SetSplitRatio(ratio float64) {
	if s := n.split(); s != nil && !math.IsNaN(ratio) {
		s.ratio = clampFloat64(ratio, MinSplitRatio, MaxSplitRatio)
	}
}

// First returns the left/top child.
func (n *Node) First() *Node {
	if s := n.split(); s != nil {
		return s.first
	}
	return nil
}

// Second returns the right/bottom child.
func (n *Node) Second() *Node {
	if s := n.split(); s != nil {
		return s.second
	}
	return nil
}

// SetFirst installs child as the left/top subtree. The whole subtree is
// attached to this node's tree. A previous occupant is orphaned.
func (n *Node) SetFirst(child *Node) {
	s := n.split()
	if s == nil {
		return
	}
	if s.first != nil && s.first != child {
		s.first.orphan()
	}
	s.first = child
	n.adoptChild(child)
}

// SetSecond installs child as the right/bottom subtree.
func (n *Node) SetSecond(child *Node) {
	s := n.split()
	if s == nil {
		return
	}
	if s.second != nil && s.second != child {
		s.second.orphan()
	}
	s.second = child
	n.adoptChild(child)
}

// DetachFirst removes and returns the left/top subtree.
func (n *Node) DetachFirst() *Node {
	s := n.split()
	if s == nil || s.first == nil {
		return nil
	}
	child := s.first
	s.first = nil
	child.orphan()
	return child
}

// DetachSecond removes and returns the right/bottom subtree.
func (n *Node) DetachSecond() *Node {
	s := n.split()
	if s == nil || s.second == nil {
		return nil
	}
	child := s.second
	s.second = nil
	child.orphan()
	return child
}

// DetachChild detaches whichever slot holds child. Returns false when child
// is not a direct child of n.
func (n *Node) DetachChild(child *Node) bool {
	switch {
	case child == nil:
		return false
	case n.First() == child:
		n.DetachFirst()
		return true
	case n.Second() == child:
		n.DetachSecond()
		return true
	default:
		return false
	}
}

// ReplaceChild puts replacement in the slot currently held by old.
func (n *Node) ReplaceChild(old, replacement *Node) bool {
	switch {
	case old == nil:
		return false
	case n.First() == old:
		n.SetFirst(replacement)
		return true
	case n.Second() == old:
		n.SetSecond(replacement)
		return true
	default:
		return false
	}
}

func (n *Node) adoptChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	child.setTree(n.tree)
}

func (n *Node) orphan() {
	n.parent = nil
	n.setTree(nil)
}

// setTree propagates the tree back-reference through the whole subtree.
func (n *Node) setTree(tree *Tree) {
	n.ForEachNode(func(node *Node) {
		node.tree = tree
	})
}

// =============================================================================
// Tabs properties
// =============================================================================

// Panels returns a copy of the panel list.
func (n *Node) Panels() []*Panel {
	t := n.tabs()
	if t == nil {
		return nil
	}
	out := make([]*Panel, len(t.panels))
	copy(out, t.panels)
	return out
}

// PanelCount returns the number of panels in a Tabs node.
func (n *Node) PanelCount() int {
	if t := n.tabs(); t != nil {
		return len(t.panels)
	}
	return 0
}

// ActiveTabIndex returns the visible tab index.
func (n *Node) ActiveTabIndex() int {
	if t := n.tabs(); t != nil {
		return t.activeIndex
	}
	return 0
}

// SetActiveTabIndex clamps index into the panel range, 0 when empty.
func (n *Node) SetActiveTabIndex(index int) {
	t := n.tabs()
	if t == nil {
		return
	}
	if len(t.panels) == 0 {
		t.activeIndex = 0
		return
	}
	t.activeIndex = clampInt(index, 0, len(t.panels)-1)
}

// ActivePanel returns the visible panel or nil.
func (n *Node) ActivePanel() *Panel {
	t := n.tabs()
	if t == nil || t.activeIndex < 0 || t.activeIndex >= len(t.panels) {
		return nil
	}
	return t.panels[t.activeIndex]
}

// AddPanel appends panel and takes ownership of it. A panel that already
// has an owner is ignored; detach it with RemovePanel first.
func (n *Node) AddPanel(panel *Panel) {
	t := n.tabs()
	if t == nil || panel == nil || panel.owner != nil {
		return
	}
	panel.owner = n
	t.panels = append(t.panels, panel)
	if len(t.panels) == 1 {
		t.activeIndex = 0
	}
}

// InsertPanel inserts panel at index (clamped to [0, len]). Inserting at or
// before the active tab shifts the active index so the same panel stays
// visible. Like AddPanel it ignores a panel that already has an owner.
func (n *Node) InsertPanel(panel *Panel, index int) {
	t := n.tabs()
	if t == nil || panel == nil || panel.owner != nil {
		return
	}
	index = clampInt(index, 0, len(t.panels))
	wasEmpty := len(t.panels) == 0

	panel.owner = n
	t.panels = append(t.panels, nil)
	copy(t.panels[index+1:], t.panels[index:])
	t.panels[index] = panel

	if wasEmpty {
		t.activeIndex = 0
		return
	}
	if t.activeIndex >= index {
		t.activeIndex++
	}
}

// RemovePanel detaches panel and returns it, nil when it is not in this node.
func (n *Node) RemovePanel(panel *Panel) *Panel {
	index := n.FindPanelIndex(panel)
	if index < 0 {
		return nil
	}
	return n.RemovePanelAt(index)
}

// RemovePanelAt detaches the panel at index and clamps the active index.
func (n *Node) RemovePanelAt(index int) *Panel {
	t := n.tabs()
	if t == nil || index < 0 || index >= len(t.panels) {
		return nil
	}

	panel := t.panels[index]
	panel.owner = nil
	t.panels = append(t.panels[:index], t.panels[index+1:]...)

	if t.activeIndex >= len(t.panels) {
		t.activeIndex = len(t.panels) - 1
	}
	if t.activeIndex < 0 {
		t.activeIndex = 0
	}
	return panel
}

// FindPanelIndex returns the index of panel by identity, -1 when absent.
func (n *Node) FindPanelIndex(panel *Panel) int {
	t := n.tabs()
	if t == nil || panel == nil {
		return -1
	}
	for i, p := range t.panels {
		if p == panel {
			return i
		}
	}
	return -1
}

// FindPanel returns the panel with the given id in this node.
func (n *Node) FindPanel(id PanelID) *Panel {
	t := n.tabs()
	if t == nil {
		return nil
	}
	for _, p := range t.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// =============================================================================
// Layout
// =============================================================================

// Layout recomputes bounds for the subtree from this node's bounds.
func (n *Node) Layout(splitterThickness, tabBarHeight float64) {
	switch k := n.kind.(type) {
	case *SplitKind:
		n.layoutSplit(k, splitterThickness, tabBarHeight)
	case *TabsKind:
		n.layoutTabs(k, tabBarHeight)
	}
}

func (n *Node) layoutSplit(s *SplitKind, splitterThickness, tabBarHeight float64) {
	// A split missing a branch collapses visually instead of failing.
	if s.first == nil || s.second == nil {
		return
	}

	b := n.bounds
	if s.direction == SplitHorizontal {
		available := b.W - splitterThickness
		firstWidth := available * s.ratio
		s.first.bounds = Rect{X: b.X, Y: b.Y, W: firstWidth, H: b.H}
		s.second.bounds = Rect{
			X: b.X + firstWidth + splitterThickness,
			Y: b.Y,
			W: available - firstWidth,
			H: b.H,
		}
	} else {
		available := b.H - splitterThickness
		firstHeight := available * s.ratio
		s.first.bounds = Rect{X: b.X, Y: b.Y, W: b.W, H: firstHeight}
		s.second.bounds = Rect{
			X: b.X,
			Y: b.Y + firstHeight + splitterThickness,
			W: b.W,
			H: available - firstHeight,
		}
	}

	s.first.Layout(splitterThickness, tabBarHeight)
	s.second.Layout(splitterThickness, tabBarHeight)
}

// layoutTabs gives every panel, not only the active one, the content rect so
// switching tabs never shows stale bounds.
func (n *Node) layoutTabs(t *TabsKind, tabBarHeight float64) {
	n.contentBounds = Rect{
		X: n.bounds.X,
		Y: n.bounds.Y + tabBarHeight,
		W: n.bounds.W,
		H: n.bounds.H - tabBarHeight,
	}
	for _, p := range t.panels {
		p.Layout(n.contentBounds)
	}
}

// TabBarBounds returns the strip at the top of a Tabs node.
func (n *Node) TabBarBounds(tabBarHeight float64) Rect {
	return Rect{X: n.bounds.X, Y: n.bounds.Y, W: n.bounds.W, H: tabBarHeight}
}

// SplitterBounds returns the divider rectangle, placed exactly where Layout
// leaves the gap between the two children.
func (n *Node) SplitterBounds(thickness float64) Rect {
	s := n.split()
	if s == nil {
		return Rect{}
	}
	b := n.bounds
	if s.direction == SplitHorizontal {
		x := b.X + (b.W-thickness)*s.ratio
		return Rect{X: x, Y: b.Y, W: thickness, H: b.H}
	}
	y := b.Y + (b.H-thickness)*s.ratio
	return Rect{X: b.X, Y: y, W: b.W, H: thickness}
}

// HitTestSplitter reports whether (x, y) is within tolerance of the divider.
func (n *Node) HitTestSplitter(x, y, tolerance float64) bool {
	if !n.IsSplit() {
		return false
	}
	return n.SplitterBounds(tolerance * 2).Contains(Vec2{X: x, Y: y})
}

// =============================================================================
// Traversal
// =============================================================================

// FindNode returns the node with id in this subtree.
func (n *Node) FindNode(id NodeID) *Node {
	if n.id == id {
		return n
	}
	if s := n.split(); s != nil {
		if s.first != nil {
			if found := s.first.FindNode(id); found != nil {
				return found
			}
		}
		if s.second != nil {
			if found := s.second.FindNode(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindNodeContainingPanel returns the first Tabs node, depth-first, holding
// the panel id.
func (n *Node) FindNodeContainingPanel(id PanelID) *Node {
	switch k := n.kind.(type) {
	case *TabsKind:
		for _, p := range k.panels {
			if p.id == id {
				return n
			}
		}
	case *SplitKind:
		if k.first != nil {
			if found := k.first.FindNodeContainingPanel(id); found != nil {
				return found
			}
		}
		if k.second != nil {
			if found := k.second.FindNodeContainingPanel(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// ForEachLeaf calls fn for every Tabs node in first-to-second order.
func (n *Node) ForEachLeaf(fn func(*Node)) {
	switch k := n.kind.(type) {
	case *TabsKind:
		fn(n)
	case *SplitKind:
		if k.first != nil {
			k.first.ForEachLeaf(fn)
		}
		if k.second != nil {
			k.second.ForEachLeaf(fn)
		}
	}
}

// ForEachNode calls fn for every node in preorder.
func (n *Node) ForEachNode(fn func(*Node)) {
	fn(n)
	if s := n.split(); s != nil {
		if s.first != nil {
			s.first.ForEachNode(fn)
		}
		if s.second != nil {
			s.second.ForEachNode(fn)
		}
	}
}

// FirstLeaf returns the first Tabs node found depth-first, following the
// first side recursively.
func (n *Node) FirstLeaf() *Node {
	var leaf *Node
	n.ForEachLeaf(func(node *Node) {
		if leaf == nil {
			leaf = node
		}
	})
	return leaf
}

// IsFirstChild reports whether n occupies its parent's first slot.
func (n *Node) IsFirstChild() bool {
	return n.parent != nil && n.parent.First() == n
}

// Sibling returns the node in the parent's other slot.
func (n *Node) Sibling() *Node {
	if n.parent == nil {
		return nil
	}
	if n.IsFirstChild() {
		return n.parent.Second()
	}
	return n.parent.First()
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// String renders the subtree as an indented outline. The active tab is
// marked with '*'.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeOutline(&sb, 0)
	return sb.String()
}

func (n *Node) writeOutline(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch k := n.kind.(type) {
	case *SplitKind:
		fmt.Fprintf(sb, "%ssplit#%d %s ratio=%.2f\n", indent, n.id, k.direction, k.ratio)
		for _, child := range []*Node{k.first, k.second} {
			if child == nil {
				fmt.Fprintf(sb, "%s  <nil>\n", indent)
				continue
			}
			child.writeOutline(sb, depth+1)
		}
	case *TabsKind:
		titles := make([]string, len(k.panels))
		for i, p := range k.panels {
			titles[i] = p.title
			if i == k.activeIndex {
				titles[i] += "*"
			}
		}
		fmt.Fprintf(sb, "%stabs#%d [%s]\n", indent, n.id, strings.Join(titles, " "))
	default:
		fmt.Fprintf(sb, "%s<invalid node #%d>\n", indent, n.id)
	}
}
