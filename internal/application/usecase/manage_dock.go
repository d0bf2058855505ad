package usecase

import (
	"context"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultDockRatio is the share given to a panel docked at an edge when the
// caller does not pick one.
const DefaultDockRatio = 0.3

// ManageDockUseCase performs structural surgery on a dock tree: placing,
// removing and moving panels, splitting nodes and collapsing empty leaves.
// It holds no state; every call works on the tree it is given.
type ManageDockUseCase struct{}

// NewManageDockUseCase creates a new dock management use case.
func NewManageDockUseCase() *ManageDockUseCase {
	return &ManageDockUseCase{}
}

// AddPanel places a detached panel in the tree and returns the Tabs node
// that received it. An empty tree gets a Tabs root. A nil or foreign target
// defaults to the root.
//
// Center, None and Root append to target, or to its first leaf when target
// is a split. Edge zones split target and put the panel in the new leaf,
// which receives ratio of the space (DefaultDockRatio when ratio is not
// positive).
func (uc *ManageDockUseCase) AddPanel(
	ctx context.Context,
	tree *entity.Tree,
	panel *entity.Panel,
	zone entity.DropZone,
	target *entity.Node,
	ratio float64,
) *entity.Node {
	log := logging.FromContext(ctx)

	if tree == nil || panel == nil {
		return nil
	}
	if panel.Owner() != nil {
		log.Warn().
			Uint32("panel_id", uint32(panel.ID())).
			Msg("panel already docked, use MovePanel")
		return nil
	}

	log.Debug().
		Uint32("panel_id", uint32(panel.ID())).
		Str("zone", zone.String()).
		Float64("ratio", ratio).
		Msg("adding panel")

	if tree.IsEmpty() {
		root := tree.NewTabs()
		root.AddPanel(panel)
		tree.SetRoot(root)
		return root
	}

	if !tree.Contains(target) {
		target = tree.Root()
	}
	return uc.place(ctx, tree, panel, zone, target, dockRatio(ratio))
}

// dockRatio replaces a non-positive or NaN ratio with DefaultDockRatio.
func dockRatio(ratio float64) float64 {
	if ratio > 0 {
		return ratio
	}
	return DefaultDockRatio
}

// place runs the placement shared by AddPanel and MovePanel.
func (uc *ManageDockUseCase) place(
	ctx context.Context,
	tree *entity.Tree,
	panel *entity.Panel,
	zone entity.DropZone,
	target *entity.Node,
	ratio float64,
) *entity.Node {
	if zone.IsEdge() {
		leaf := uc.SplitNode(ctx, tree, target, zone.SplitDirection(), ratio, zone.InsertsFirst())
		if leaf == nil {
			return nil
		}
		leaf.AddPanel(panel)
		return leaf
	}

	leaf := centerLeaf(target)
	if leaf == nil {
		return nil
	}
	leaf.AddPanel(panel)
	return leaf
}

// centerLeaf picks the Tabs node a center drop on target lands in.
func centerLeaf(target *entity.Node) *entity.Node {
	if target == nil {
		return nil
	}
	if target.IsTabs() {
		return target
	}
	return target.FirstLeaf()
}

// SplitNode wraps node and a new empty Tabs node into a split and returns
// the new Tabs node. ratio is the share of the new node: the stored split
// ratio is ratio when the new node goes first and 1-ratio otherwise.
// Returns nil when node is not part of tree.
func (*ManageDockUseCase) SplitNode(
	ctx context.Context,
	tree *entity.Tree,
	node *entity.Node,
	direction entity.SplitDirection,
	ratio float64,
	insertFirst bool,
) *entity.Node {
	log := logging.FromContext(ctx)

	if tree == nil || !tree.Contains(node) {
		return nil
	}

	parent := node.Parent()
	isRoot := node == tree.Root()
	if !isRoot && (parent == nil || !parent.IsSplit()) {
		return nil
	}

	newTabs := tree.NewTabs()
	split := tree.NewSplit(direction)
	if insertFirst {
		split.SetSplitRatio(ratio)
	} else {
		split.SetSplitRatio(1 - ratio)
	}

	wasFirst := node.IsFirstChild()
	if !isRoot {
		parent.DetachChild(node)
	}

	if insertFirst {
		split.SetFirst(newTabs)
		split.SetSecond(node)
	} else {
		split.SetFirst(node)
		split.SetSecond(newTabs)
	}

	switch {
	case isRoot:
		tree.SetRoot(split)
	case wasFirst:
		parent.SetFirst(split)
	default:
		parent.SetSecond(split)
	}

	log.Debug().
		Uint32("node_id", uint32(node.ID())).
		Uint32("split_id", uint32(split.ID())).
		Uint32("new_node_id", uint32(newTabs.ID())).
		Str("direction", direction.String()).
		Float64("ratio", split.SplitRatio()).
		Bool("insert_first", insertFirst).
		Msg("split node")

	return newTabs
}

// MergeResult reports what TryMergeNode collapsed.
type MergeResult struct {
	// Removed holds the empty leaf and, unless the tree became empty, the
	// split that held it.
	Removed []entity.NodeID
	// Remaining is the sibling promoted into the split's place, or
	// InvalidNodeID when the tree became empty.
	Remaining entity.NodeID
}

// Merged reports whether any node was discarded.
func (r MergeResult) Merged() bool { return len(r.Removed) > 0 }

// TryMergeNode removes an empty Tabs node. Its sibling takes the parent's
// place in the grandparent, or becomes the root. An empty root clears the
// tree. A zero result means nothing merged.
func (*ManageDockUseCase) TryMergeNode(ctx context.Context, tree *entity.Tree, node *entity.Node) MergeResult {
	log := logging.FromContext(ctx)

	if tree == nil || !tree.Contains(node) || !node.IsEmpty() {
		return MergeResult{}
	}

	parent := node.Parent()
	if parent == nil || !parent.IsSplit() {
		if node == tree.Root() {
			tree.SetRoot(nil)
			log.Debug().Uint32("node_id", uint32(node.ID())).Msg("cleared empty root")
			return MergeResult{Removed: []entity.NodeID{node.ID()}, Remaining: entity.InvalidNodeID}
		}
		return MergeResult{}
	}

	sibling := node.Sibling()
	if sibling == nil {
		return MergeResult{}
	}
	parent.DetachChild(sibling)

	grandparent := parent.Parent()
	switch {
	case grandparent != nil && grandparent.IsSplit():
		grandparent.ReplaceChild(parent, sibling)
	case parent == tree.Root():
		tree.SetRoot(sibling)
	}

	log.Debug().
		Uint32("node_id", uint32(node.ID())).
		Uint32("parent_id", uint32(parent.ID())).
		Uint32("promoted_id", uint32(sibling.ID())).
		Msg("merged empty node")

	return MergeResult{
		Removed:   []entity.NodeID{node.ID(), parent.ID()},
		Remaining: sibling.ID(),
	}
}

// RemovePanel detaches the panel with id and collapses its node when it
// becomes empty. Returns the panel and what the collapse discarded.
func (uc *ManageDockUseCase) RemovePanel(
	ctx context.Context,
	tree *entity.Tree,
	id entity.PanelID,
) (*entity.Panel, MergeResult) {
	if tree == nil {
		return nil, MergeResult{}
	}
	node := tree.FindNodeContainingPanel(id)
	if node == nil {
		return nil, MergeResult{}
	}
	panel := node.RemovePanel(node.FindPanel(id))
	if panel == nil {
		return nil, MergeResult{}
	}

	logging.FromContext(ctx).Debug().
		Uint32("panel_id", uint32(id)).
		Uint32("node_id", uint32(node.ID())).
		Msg("removed panel")

	var merge MergeResult
	if node.IsEmpty() {
		merge = uc.TryMergeNode(ctx, tree, node)
	}
	return panel, merge
}

// MoveResult reports what a successful move changed.
type MoveResult struct {
	Source      entity.NodeID
	Destination *entity.Node
	Merge       MergeResult
}

// MovePanel re-docks a panel already in tree at target. The target is
// checked before the panel is detached so a rejected move leaves the tree
// untouched. A nil or foreign target node defaults to the root and a
// non-positive split ratio to DefaultDockRatio.
func (uc *ManageDockUseCase) MovePanel(
	ctx context.Context,
	tree *entity.Tree,
	panel *entity.Panel,
	target entity.DropTarget,
) (MoveResult, bool) {
	log := logging.FromContext(ctx)

	if tree == nil || panel == nil || target.Zone == entity.DropZoneNone {
		return MoveResult{}, false
	}
	source := panel.Owner()
	if source == nil || source.Tree() != tree {
		return MoveResult{}, false
	}

	dest := target.Target
	if !tree.Contains(dest) {
		dest = tree.Root()
	}
	if !uc.canPlace(tree, dest, target.Zone) {
		log.Debug().
			Uint32("panel_id", uint32(panel.ID())).
			Str("zone", target.Zone.String()).
			Msg("rejected move")
		return MoveResult{}, false
	}

	ratio := dockRatio(target.SplitRatio)

	source.RemovePanel(panel)
	received := uc.place(ctx, tree, panel, target.Zone, dest, ratio)

	result := MoveResult{Source: source.ID(), Destination: received}
	if source.IsEmpty() {
		result.Merge = uc.TryMergeNode(ctx, tree, source)
	}

	log.Info().
		Uint32("panel_id", uint32(panel.ID())).
		Uint32("from_node", uint32(source.ID())).
		Uint32("to_node", uint32(received.ID())).
		Str("zone", target.Zone.String()).
		Msg("moved panel")

	return result, true
}

// canPlace mirrors the failure paths of place without mutating anything.
func (*ManageDockUseCase) canPlace(tree *entity.Tree, dest *entity.Node, zone entity.DropZone) bool {
	if dest == nil {
		return false
	}
	if !zone.IsEdge() {
		return centerLeaf(dest) != nil
	}
	if dest == tree.Root() {
		return true
	}
	parent := dest.Parent()
	return parent != nil && parent.IsSplit()
}

// SetSplitRatio updates the ratio of the split with id. The ratio is clamped.
func (*ManageDockUseCase) SetSplitRatio(ctx context.Context, tree *entity.Tree, id entity.NodeID, ratio float64) bool {
	if tree == nil {
		return false
	}
	node := tree.FindNode(id)
	if node == nil || !node.IsSplit() {
		return false
	}
	node.SetSplitRatio(ratio)

	logging.FromContext(ctx).Debug().
		Uint32("node_id", uint32(id)).
		Float64("ratio", node.SplitRatio()).
		Msg("set split ratio")
	return true
}

// SplitterRatioAt converts an absolute cursor position into the ratio of a
// split being dragged: (cursor - origin) / extent along the split axis.
// The result is kept in the split ratio range and, when the node is large
// enough, so neither child shrinks below minPanelSize.
func (*ManageDockUseCase) SplitterRatioAt(node *entity.Node, cursor entity.Vec2, minPanelSize entity.Vec2) float64 {
	if node == nil || !node.IsSplit() {
		return 0
	}

	dir := node.SplitDirection()
	bounds := node.Bounds()
	extent := bounds.Extent(dir)
	if extent <= 0 {
		return node.SplitRatio()
	}

	pos, minSize := cursor.X, minPanelSize.X
	if dir == entity.SplitVertical {
		pos, minSize = cursor.Y, minPanelSize.Y
	}

	ratio := (pos - bounds.Origin(dir)) / extent
	if math.IsNaN(ratio) {
		return node.SplitRatio()
	}
	if minSize > 0 {
		lower := minSize / extent
		upper := 1 - lower
		if lower <= upper {
			ratio = clampFloat64(ratio, lower, upper)
		}
	}
	return clampFloat64(ratio, entity.MinSplitRatio, entity.MaxSplitRatio)
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
