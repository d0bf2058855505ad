package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTree wraps every structural problem reported by Validate.
var ErrInvalidTree = errors.New("invalid dock tree")

// Tree owns the root of a dock tree and mints node ids scoped to it.
type Tree struct {
	root       *Node
	nextNodeID NodeID
}

// NewTree creates an empty tree whose first node id is 1.
func NewTree() *Tree {
	return &Tree{nextNodeID: InvalidNodeID + 1}
}

// Root returns the root node, nil when the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// SetRoot installs node as the root and attaches its whole subtree.
// A nil node clears the tree.
func (t *Tree) SetRoot(node *Node) {
	if t.root != nil && t.root != node && t.root.tree == t {
		t.root.setTree(nil)
	}
	t.root = node
	if node != nil {
		node.parent = nil
		node.setTree(t)
	}
}

// GenerateNodeID returns a fresh node id.
func (t *Tree) GenerateNodeID() NodeID {
	id := t.nextNodeID
	t.nextNodeID++
	return id
}

// NewTabs creates a detached empty Tabs node with a fresh id.
func (t *Tree) NewTabs() *Node {
	return NewTabsNode(t.GenerateNodeID())
}

// NewSplit creates a detached Split node with a fresh id.
func (t *Tree) NewSplit(direction SplitDirection) *Node {
	return NewSplitNode(t.GenerateNodeID(), direction)
}

// Contains reports whether node is attached to this tree.
func (t *Tree) Contains(node *Node) bool {
	return node != nil && t.root != nil && node.tree == t
}

// FindNode returns the node with id, nil when absent.
func (t *Tree) FindNode(id NodeID) *Node {
	if t.root == nil || id == InvalidNodeID {
		return nil
	}
	return t.root.FindNode(id)
}

// FindNodeContainingPanel returns the Tabs node holding the panel id.
func (t *Tree) FindNodeContainingPanel(id PanelID) *Node {
	if t.root == nil {
		return nil
	}
	return t.root.FindNodeContainingPanel(id)
}

// FindPanel returns the panel with id anywhere in the tree.
func (t *Tree) FindPanel(id PanelID) *Panel {
	node := t.FindNodeContainingPanel(id)
	if node == nil {
		return nil
	}
	return node.FindPanel(id)
}

// AllPanels returns every panel in leaf order.
func (t *Tree) AllPanels() []*Panel {
	var panels []*Panel
	if t.root == nil {
		return panels
	}
	t.root.ForEachLeaf(func(node *Node) {
		panels = append(panels, node.tabs().panels...)
	})
	return panels
}

// LeafCount returns the number of Tabs nodes.
func (t *Tree) LeafCount() int {
	count := 0
	if t.root != nil {
		t.root.ForEachLeaf(func(*Node) { count++ })
	}
	return count
}

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int {
	count := 0
	if t.root != nil {
		t.root.ForEachNode(func(*Node) { count++ })
	}
	return count
}

// String renders the tree outline, "<empty>" for an empty tree.
func (t *Tree) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	return t.root.String()
}

// Validate checks every structural invariant and reports the first violation.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root #%d has a parent", ErrInvalidTree, t.root.id)
	}

	seen := make(map[NodeID]bool)
	var err error
	t.root.ForEachNode(func(n *Node) {
		if err != nil {
			return
		}
		err = t.validateNode(n, seen)
	})
	return err
}

func (t *Tree) validateNode(n *Node, seen map[NodeID]bool) error {
	if n.id == InvalidNodeID {
		return fmt.Errorf("%w: node has the invalid id", ErrInvalidTree)
	}
	if seen[n.id] {
		return fmt.Errorf("%w: duplicate node id %d", ErrInvalidTree, n.id)
	}
	seen[n.id] = true

	if n.tree != t {
		return fmt.Errorf("%w: node #%d has a stale tree reference", ErrInvalidTree, n.id)
	}

	switch k := n.kind.(type) {
	case *SplitKind:
		if k.first == nil || k.second == nil {
			return fmt.Errorf("%w: split #%d is missing a child", ErrInvalidTree, n.id)
		}
		if !(k.ratio >= MinSplitRatio && k.ratio <= MaxSplitRatio) {
			return fmt.Errorf("%w: split #%d ratio %.3f out of range", ErrInvalidTree, n.id, k.ratio)
		}
		if k.first.parent != n || k.second.parent != n {
			return fmt.Errorf("%w: split #%d has a child with a stale parent", ErrInvalidTree, n.id)
		}
	case *TabsKind:
		if len(k.panels) == 0 && k.activeIndex != 0 {
			return fmt.Errorf("%w: empty tabs #%d has active index %d", ErrInvalidTree, n.id, k.activeIndex)
		}
		if len(k.panels) > 0 && (k.activeIndex < 0 || k.activeIndex >= len(k.panels)) {
			return fmt.Errorf("%w: tabs #%d active index %d out of range", ErrInvalidTree, n.id, k.activeIndex)
		}
		for _, p := range k.panels {
			if p.owner != n {
				return fmt.Errorf("%w: panel %d in tabs #%d has a stale owner", ErrInvalidTree, p.id, n.id)
			}
		}
	default:
		return fmt.Errorf("%w: node #%d has no kind", ErrInvalidTree, n.id)
	}
	return nil
}
